package marathonstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marquee/internal/marathon"
	"marquee/internal/marathonstore"
	"marquee/internal/testsupport"
)

func sampleMarathon(id string, created time.Time) *marathon.Marathon {
	return &marathon.Marathon{
		ID:        id,
		Name:      "Fright Nights",
		Holiday:   "halloween",
		StartDate: "2026-10-01",
		EndDate:   "2026-10-03",
		Entries: []marathon.ScheduleEntry{
			{
				MovieID: "m1",
				Date:    "2026-10-01",
				Phase:   "warmup",
				Reason:  "gentle opener",
				Pairings: marathon.PairingSet{
					Drinks: []marathon.DrinkOption{
						{Name: "Corpse Reviver", Type: marathon.DrinkTypeCocktail, Ingredients: []string{"gin", "lemon"}},
					},
					Food: &marathon.FoodOption{Name: "Monster Munch", Difficulty: marathon.FoodDifficultyEasy},
				},
			},
			{
				MovieID:  "m2",
				Date:     "2026-10-02",
				Pairings: marathon.PairingSet{Drinks: []marathon.DrinkOption{}},
			},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	created := time.Date(2026, 9, 20, 18, 30, 0, 123456000, time.UTC)
	original := sampleMarathon("abc-123", created)

	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Get(ctx, "abc-123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.Name != original.Name || loaded.Holiday != original.Holiday {
		t.Fatalf("metadata mismatch: %+v", loaded)
	}
	if len(loaded.Entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(loaded.Entries))
	}
	first := loaded.Entries[0]
	if first.MovieID != "m1" || first.Pairings.Food == nil || first.Pairings.Food.Name != "Monster Munch" {
		t.Fatalf("first entry mismatch: %+v", first)
	}
	if len(first.Pairings.Drinks) != 1 || first.Pairings.Drinks[0].Name != "Corpse Reviver" {
		t.Fatalf("drinks mismatch: %+v", first.Pairings.Drinks)
	}
	if !loaded.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", loaded.CreatedAt, created)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	created := time.Now().UTC()
	m := sampleMarathon("abc-123", created)
	if err := store.Save(ctx, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m.Name = "Renamed"
	m.UpdatedAt = created.Add(time.Hour)
	if err := store.Save(ctx, m); err != nil {
		t.Fatalf("Save (replace): %v", err)
	}

	loaded, err := store.Get(ctx, "abc-123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.Name != "Renamed" {
		t.Fatalf("name = %q, want Renamed", loaded.Name)
	}
	if !loaded.UpdatedAt.After(loaded.CreatedAt) {
		t.Fatal("UpdatedAt should move on replace")
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("replace must not duplicate rows, got %d", len(summaries))
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"older", "newer"} {
		m := sampleMarathon(id, base.Add(time.Duration(i)*time.Hour))
		if err := store.Save(ctx, m); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summary count = %d, want 2", len(summaries))
	}
	if summaries[0].ID != "newer" || summaries[1].ID != "older" {
		t.Fatalf("unexpected order: %s, %s", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].EntryCount != 2 {
		t.Fatalf("EntryCount = %d, want 2", summaries[0].EntryCount)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, marathonstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.Save(ctx, sampleMarathon("abc-123", time.Now().UTC())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, "abc-123"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "abc-123"); !errors.Is(err, marathonstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "abc-123"); !errors.Is(err, marathonstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}
