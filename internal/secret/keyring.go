package secret

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore implements SecretStore on top of the operating system's
// credential manager: Keychain on macOS, Credential Manager on Windows,
// Secret Service (libsecret) on Linux.
type KeyringStore struct{}

// NewKeyringStore creates a new KeyringStore.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Set stores a secret in the OS credential manager.
// If the (service, key) pair already holds a value, it is replaced.
func (s *KeyringStore) Set(service, key, value string) error {
	return keyring.Set(service, key, value)
}

// Get retrieves a secret from the OS credential manager.
// Returns ErrNotFound if no entry exists for the pair.
func (s *KeyringStore) Get(service, key string) (string, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Delete removes a secret from the OS credential manager.
// Returns ErrNotFound if no entry exists for the pair.
func (s *KeyringStore) Delete(service, key string) error {
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
