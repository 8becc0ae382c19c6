package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"marquee/internal/marathon"
)

func TestAssembleUsesSelectionMetadata(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	sel := selection{Name: "Fright Nights", Holiday: "halloween"}
	entries := scheduleFor(2)
	prefs := marathon.Preferences{Occasion: "halloween", StartDate: "2026-10-01", EndDate: "2026-10-02"}

	m := assemble(sel, entries, prefs, now)

	if _, err := uuid.Parse(m.ID); err != nil {
		t.Fatalf("marathon id is not a UUID: %v", err)
	}
	if m.Name != "Fright Nights" || m.Holiday != "halloween" {
		t.Fatalf("unexpected metadata %q/%q", m.Name, m.Holiday)
	}
	if m.StartDate != "2026-10-01" || m.EndDate != "2026-10-02" {
		t.Fatalf("unexpected dates %q..%q", m.StartDate, m.EndDate)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("unexpected entry count %d", len(m.Entries))
	}
	if !m.CreatedAt.Equal(now) || m.CreatedAt.Location() != time.UTC {
		t.Fatalf("CreatedAt should be now in UTC, got %v", m.CreatedAt)
	}
	if !m.UpdatedAt.Equal(m.CreatedAt) {
		t.Fatal("UpdatedAt should equal CreatedAt at assembly")
	}
}

func TestAssembleDefaultsNameAndHoliday(t *testing.T) {
	m := assemble(selection{}, nil, marathon.Preferences{Occasion: "spooky season"}, time.Now())
	if m.Name != "Spooky Season Marathon" {
		t.Fatalf("unexpected default name %q", m.Name)
	}
	if m.Holiday != "custom" {
		t.Fatalf("unexpected default holiday %q", m.Holiday)
	}
}

func TestAssembleDefaultNameWithoutOccasion(t *testing.T) {
	m := assemble(selection{}, nil, marathon.Preferences{}, time.Now())
	if m.Name != "Movie Marathon" {
		t.Fatalf("unexpected default name %q", m.Name)
	}
}

func TestAssembleUniqueIDs(t *testing.T) {
	a := assemble(selection{}, nil, marathon.Preferences{}, time.Now())
	b := assemble(selection{}, nil, marathon.Preferences{}, time.Now())
	if a.ID == b.ID {
		t.Fatal("each assembly must mint a fresh id")
	}
}
