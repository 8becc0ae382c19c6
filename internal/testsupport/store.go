package testsupport

import (
	"testing"

	"marquee/internal/config"
	"marquee/internal/marathonstore"
)

// MustOpenStore opens a marathonstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *marathonstore.Store {
	t.Helper()

	store, err := marathonstore.Open(cfg)
	if err != nil {
		t.Fatalf("marathonstore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
