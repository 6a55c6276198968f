package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/thiagovelsa/jurisdesk/internal/secret"
	"github.com/thiagovelsa/jurisdesk/internal/service"
)

// ─────────────────────────────────────────────────────────────
// SecretService tests
// ─────────────────────────────────────────────────────────────

// failingStore wraps a MemoryStore and forces Set to fail, standing in
// for a keyring that denies access.
type failingStore struct {
	*secret.MemoryStore
	setErr error
}

func (f *failingStore) Set(service, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStore.Set(service, key, value)
}

func TestSecretService_SetThenGet(t *testing.T) {
	svc := service.NewSecretService(secret.NewMemoryStore())

	if err := svc.Set("jurisdesk", "smtp-password", "hunter2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := svc.Get("jurisdesk", "smtp-password")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || *got != "hunter2" {
		t.Fatalf("Get returned %v, want pointer to %q", got, "hunter2")
	}
}

func TestSecretService_OverwriteKeepsLatest(t *testing.T) {
	svc := service.NewSecretService(secret.NewMemoryStore())

	if err := svc.Set("jurisdesk", "api-token", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := svc.Set("jurisdesk", "api-token", "v2"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	got, err := svc.Get("jurisdesk", "api-token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || *got != "v2" {
		t.Fatalf("Get returned %v, want pointer to %q", got, "v2")
	}
}

func TestSecretService_GetMissingIsNilNotError(t *testing.T) {
	svc := service.NewSecretService(secret.NewMemoryStore())

	got, err := svc.Get("jurisdesk", "never-set")
	if err != nil {
		t.Fatalf("Get of missing entry errored: %v", err)
	}
	if got != nil {
		t.Fatalf("Get of missing entry returned %q, want nil", *got)
	}
}

func TestSecretService_DeleteMissingIsNoop(t *testing.T) {
	svc := service.NewSecretService(secret.NewMemoryStore())

	if err := svc.Delete("jurisdesk", "never-set"); err != nil {
		t.Fatalf("Delete of missing entry errored: %v", err)
	}
}

func TestSecretService_TokenLifecycle(t *testing.T) {
	svc := service.NewSecretService(secret.NewMemoryStore())

	if err := svc.Set("jurisdesk", "api-token", "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := svc.Get("jurisdesk", "api-token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || *got != "abc123" {
		t.Fatalf("Get returned %v, want pointer to %q", got, "abc123")
	}

	if err := svc.Delete("jurisdesk", "api-token"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err = svc.Get("jurisdesk", "api-token")
	if err != nil {
		t.Fatalf("Get after Delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("Get after Delete returned %q, want nil", *got)
	}

	// Deleting again must still succeed.
	if err := svc.Delete("jurisdesk", "api-token"); err != nil {
		t.Fatalf("second Delete errored: %v", err)
	}
}

func TestSecretService_SetFailureSurfacesError(t *testing.T) {
	store := &failingStore{
		MemoryStore: secret.NewMemoryStore(),
		setErr:      errors.New("access to keyring denied"),
	}
	svc := service.NewSecretService(store)

	err := svc.Set("jurisdesk", "api-token", "abc123")
	if err == nil {
		t.Fatal("expected Set to fail")
	}
	if err.Error() == "" {
		t.Fatal("expected non-empty error message")
	}
	if !strings.Contains(err.Error(), "denied") {
		t.Errorf("error %q does not mention the cause", err)
	}

	// The failed Set must not have created an entry.
	got, err := svc.Get("jurisdesk", "api-token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("entry exists after failed Set: %q", *got)
	}
}

func TestSecretService_GetFailureSurfacesError(t *testing.T) {
	svc := service.NewSecretService(brokenStore{})

	if _, err := svc.Get("jurisdesk", "api-token"); err == nil {
		t.Fatal("expected Get to fail")
	}
	if err := svc.Delete("jurisdesk", "api-token"); err == nil {
		t.Fatal("expected Delete to fail")
	}
}

// brokenStore fails every operation, standing in for an unavailable
// keyring backend.
type brokenStore struct{}

func (brokenStore) Set(_, _, _ string) error { return errors.New("keyring backend unavailable") }
func (brokenStore) Get(_, _ string) (string, error) {
	return "", errors.New("keyring backend unavailable")
}
func (brokenStore) Delete(_, _ string) error { return errors.New("keyring backend unavailable") }
