package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"marquee/internal/marathon"
)

func TestMergePreferencesFlagsWin(t *testing.T) {
	base := marathon.Preferences{
		Occasion:   "halloween",
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-31",
		Vibes:      []string{"spooky"},
		DrinkPrefs: []string{"cocktails"},
		Notes:      "from file",
	}
	override := marathon.Preferences{
		Occasion: "christmas",
		Vibes:    []string{"cozy", "festive"},
	}

	merged := mergePreferences(base, override)
	if merged.Occasion != "christmas" {
		t.Fatalf("occasion = %q", merged.Occasion)
	}
	if len(merged.Vibes) != 2 || merged.Vibes[0] != "cozy" {
		t.Fatalf("vibes = %v", merged.Vibes)
	}
	if merged.StartDate != "2026-10-01" || merged.EndDate != "2026-10-31" {
		t.Fatalf("dates should survive: %q..%q", merged.StartDate, merged.EndDate)
	}
	if merged.Notes != "from file" || len(merged.DrinkPrefs) != 1 {
		t.Fatalf("unset flags must not clobber file values: %+v", merged)
	}
}

func TestResolvePreferencesFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	fromFile := marathon.Preferences{
		Occasion: "halloween",
		Phases: []marathon.Phase{
			{Name: "family week", Audience: "kids"},
		},
		MustInclude: "Hocus Pocus",
	}
	data, err := json.Marshal(fromFile)
	if err != nil {
		t.Fatalf("marshal prefs: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	prefs, err := resolvePreferences(path, marathon.Preferences{StartDate: "2026-10-20"})
	if err != nil {
		t.Fatalf("resolvePreferences returned error: %v", err)
	}
	if prefs.Occasion != "halloween" || prefs.MustInclude != "Hocus Pocus" {
		t.Fatalf("file values missing: %+v", prefs)
	}
	if len(prefs.Phases) != 1 || prefs.Phases[0].Name != "family week" {
		t.Fatalf("phases missing: %+v", prefs.Phases)
	}
	if prefs.StartDate != "2026-10-20" {
		t.Fatalf("flag value missing: %q", prefs.StartDate)
	}
}

func TestResolvePreferencesNoFile(t *testing.T) {
	prefs, err := resolvePreferences("", marathon.Preferences{Occasion: "movie night"})
	if err != nil {
		t.Fatalf("resolvePreferences returned error: %v", err)
	}
	if prefs.Occasion != "movie night" {
		t.Fatalf("unexpected prefs %+v", prefs)
	}
}

func TestResolvePreferencesBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	if _, err := resolvePreferences(path, marathon.Preferences{}); err == nil {
		t.Fatal("expected parse error")
	}
}
