package preflight_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
	"marquee/internal/library"
	"marquee/internal/preflight"
	"marquee/internal/testsupport"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := preflight.CheckDirectoryAccess("Data directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for %s: %s", dir, result.Detail)
	}

	result = preflight.CheckDirectoryAccess("Data directory", filepath.Join(dir, "absent"))
	if result.Passed {
		t.Fatal("expected failure for missing directory")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}

	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result = preflight.CheckDirectoryAccess("Data directory", file)
	if result.Passed {
		t.Fatal("expected failure for non-directory path")
	}
}

func TestCheckLibraryIndex(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteLibraryIndex(t, cfg, []library.Entry{{ID: "m1", Title: "Only"}})

	result := preflight.CheckLibraryIndex(cfg.Paths.LibraryIndex)
	if !result.Passed {
		t.Fatalf("expected pass: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "1 movies") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckLibraryIndexEmpty(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteLibraryIndex(t, cfg, nil)

	result := preflight.CheckLibraryIndex(cfg.Paths.LibraryIndex)
	if result.Passed {
		t.Fatal("expected failure for empty index")
	}
}

func TestCheckLibraryIndexMissing(t *testing.T) {
	result := preflight.CheckLibraryIndex(filepath.Join(t.TempDir(), "absent.json"))
	if result.Passed {
		t.Fatal("expected failure for missing index")
	}
}

func TestCheckOracle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": `{"ok":true}`}},
					},
				},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	result := preflight.CheckOracle(context.Background(), config.OracleConfig{
		APIKey:  "test",
		BaseURL: server.URL,
		Model:   "demo",
	})
	if !result.Passed {
		t.Fatalf("expected pass: %s", result.Detail)
	}
}

func TestCheckOracleMissingKey(t *testing.T) {
	result := preflight.CheckOracle(context.Background(), config.OracleConfig{Model: "demo"})
	if result.Passed {
		t.Fatal("expected failure without an API key")
	}
	if !strings.Contains(result.Detail, "API key missing") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	testsupport.WriteLibraryIndex(t, cfg, []library.Entry{{ID: "m1"}})
	cfg.Oracle.APIKey = ""

	results := preflight.RunAll(context.Background(), cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	if !results[0].Passed || !results[1].Passed {
		t.Fatalf("directory and library checks should pass: %+v", results)
	}
	if results[2].Passed {
		t.Fatal("oracle check should fail without a key")
	}
}
