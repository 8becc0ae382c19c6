package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"marquee/internal/config"
	"marquee/internal/library"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.LibraryIndex = filepath.Join(base, "library.json")
	cfg.Oracle.APIKey = "test"
	return &cfg
}

// WriteLibraryIndex writes a valid library index document with the supplied
// entries at the config's library path.
func WriteLibraryIndex(t testing.TB, cfg *config.Config, entries []library.Entry) {
	t.Helper()

	doc := struct {
		Movies []library.Entry `json:"movies"`
	}{Movies: entries}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal library index: %v", err)
	}
	if err := os.WriteFile(cfg.Paths.LibraryIndex, data, 0o644); err != nil {
		t.Fatalf("write library index: %v", err)
	}
}
