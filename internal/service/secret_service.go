package service

import (
	"errors"
	"fmt"

	"github.com/thiagovelsa/jurisdesk/internal/secret"
)

// ─────────────────────────────────────────────────────────────
// Secret Service
// ─────────────────────────────────────────────────────────────
//
// Bridges the credential plugin surface to the OS keyring. The frontend
// addresses entries by (service, key) pair. A missing entry is a regular
// outcome, never an error: Get reports it as nil, Delete treats it as an
// already-done no-op. Every other keyring failure is passed through as a
// plain error for the UI to display.

// SecretService reads and writes credentials in the OS keyring.
type SecretService struct {
	store secret.SecretStore
}

// NewSecretService creates a SecretService backed by store.
func NewSecretService(store secret.SecretStore) *SecretService {
	return &SecretService{store: store}
}

// Set stores value under the (service, key) pair, replacing any
// previous value.
func (s *SecretService) Set(service, key, value string) error {
	if err := s.store.Set(service, key, value); err != nil {
		return fmt.Errorf("store secret %s/%s: %w", service, key, err)
	}
	return nil
}

// Get returns the secret for the (service, key) pair, or nil when no
// entry exists. Absence is not an error.
func (s *SecretService) Get(service, key string) (*string, error) {
	value, err := s.store.Get(service, key)
	if err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read secret %s/%s: %w", service, key, err)
	}
	return &value, nil
}

// Delete removes the secret for the (service, key) pair. Deleting an
// entry that does not exist succeeds; the end state is the same.
func (s *SecretService) Delete(service, key string) error {
	if err := s.store.Delete(service, key); err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete secret %s/%s: %w", service, key, err)
	}
	return nil
}
