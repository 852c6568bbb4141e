package testsupport

import (
	"context"
	"testing"

	"lexweave/internal/config"
	"lexweave/internal/manifest"
)

// MustOpenStore opens a manifest.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *manifest.Store {
	t.Helper()

	store, err := manifest.Open(cfg)
	if err != nil {
		t.Fatalf("manifest.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewRun creates a pending run for tests using the provided store.
func NewRun(t testing.TB, store *manifest.Store, tranches ...string) *manifest.Run {
	t.Helper()

	run, err := store.NewRun(context.Background(), tranches)
	if err != nil {
		t.Fatalf("store.NewRun: %v", err)
	}
	return run
}
