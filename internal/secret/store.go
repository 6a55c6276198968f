package secret

import "errors"

// ErrNotFound is returned when no secret exists for a (service, key) pair.
var ErrNotFound = errors.New("secret not found")

// SecretStore provides a pluggable interface for storing sensitive data
// such as API tokens. The default implementation uses the operating
// system's credential manager, but can be swapped for Vault, env vars, etc.
type SecretStore interface {
	// Set stores a secret value under the given (service, key) pair.
	// An existing value for the same pair is overwritten.
	Set(service, key, value string) error

	// Get retrieves the secret value for the given (service, key) pair.
	// Returns ErrNotFound if no entry exists.
	Get(service, key string) (string, error)

	// Delete removes the secret for the given (service, key) pair.
	// Returns ErrNotFound if no entry exists.
	Delete(service, key string) error
}
