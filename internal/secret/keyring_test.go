package secret_test

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/thiagovelsa/jurisdesk/internal/secret"
)

func TestKeyringStoreRoundTrip(t *testing.T) {
	keyring.MockInit()
	store := secret.NewKeyringStore()

	if err := store.Set("jurisdesk-test", "api-token", "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get("jurisdesk-test", "api-token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("Get returned %q, want %q", got, "abc123")
	}

	if err := store.Delete("jurisdesk-test", "api-token"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.Get("jurisdesk-test", "api-token"); !errors.Is(err, secret.ErrNotFound) {
		t.Fatalf("Get after Delete returned %v, want ErrNotFound", err)
	}
}

func TestKeyringStoreOverwrite(t *testing.T) {
	keyring.MockInit()
	store := secret.NewKeyringStore()

	if err := store.Set("jurisdesk-test", "db-password", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("jurisdesk-test", "db-password", "second"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	got, err := store.Get("jurisdesk-test", "db-password")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "second" {
		t.Fatalf("Get returned %q, want %q", got, "second")
	}
}

func TestKeyringStoreMissing(t *testing.T) {
	keyring.MockInit()
	store := secret.NewKeyringStore()

	if _, err := store.Get("jurisdesk-test", "never-set"); !errors.Is(err, secret.ErrNotFound) {
		t.Fatalf("Get returned %v, want ErrNotFound", err)
	}
	if err := store.Delete("jurisdesk-test", "never-set"); !errors.Is(err, secret.ErrNotFound) {
		t.Fatalf("Delete returned %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreMatchesKeyringContract(t *testing.T) {
	store := secret.NewMemoryStore()

	if _, err := store.Get("svc", "k"); !errors.Is(err, secret.ErrNotFound) {
		t.Fatalf("Get on empty store returned %v, want ErrNotFound", err)
	}
	if err := store.Delete("svc", "k"); !errors.Is(err, secret.ErrNotFound) {
		t.Fatalf("Delete on empty store returned %v, want ErrNotFound", err)
	}

	if err := store.Set("svc", "k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("svc", "k", "v2"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	got, err := store.Get("svc", "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "v2" {
		t.Fatalf("Get returned %q, want %q", got, "v2")
	}

	if err := store.Delete("svc", "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("svc", "k"); !errors.Is(err, secret.ErrNotFound) {
		t.Fatalf("Get after Delete returned %v, want ErrNotFound", err)
	}
}
