package app

// SetSecret stores value under the (service, key) pair in the OS
// credential store, replacing any existing value.
func (a *App) SetSecret(service, key, value string) error {
	return a.secrets.Set(service, key, value)
}

// GetSecret returns the stored value for (service, key). A missing
// entry returns nil (JS null), not an error.
func (a *App) GetSecret(service, key string) (*string, error) {
	return a.secrets.Get(service, key)
}

// DeleteSecret removes the entry for (service, key). Deleting a
// missing entry succeeds.
func (a *App) DeleteSecret(service, key string) error {
	return a.secrets.Delete(service, key)
}
