package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"marquee/internal/logging"
	"marquee/internal/marathon"
	"marquee/internal/services"
	"marquee/internal/services/oracle"
)

func TestSelectScheduleDropsUnknownAndDuplicateIDs(t *testing.T) {
	idx := testIndex(t, 3)
	client := &fakeOracle{
		respond: func(call int, prompt string, maxTokens int) (string, error) {
			if maxTokens != 4096 {
				t.Fatalf("unexpected token budget %d", maxTokens)
			}
			return `Here you go: {"name": "Test Fest", "holidayTag": "halloween", "entries": [
				{"movieId": "m1", "date": "2026-10-01", "aiReason": "opener"},
				{"movieId": "ghost-99", "date": "2026-10-02", "aiReason": "does not exist"},
				{"movieId": "m2", "date": "2026-10-03", "aiReason": "middle"},
				{"movieId": "m1", "date": "2026-10-04", "aiReason": "repeat"},
				{"movieId": "m3", "date": "2026-10-05", "aiReason": "finale"}
			]}`, nil
		},
	}

	s := &selector{client: client, logger: logging.NewNop()}
	sel, err := s.selectSchedule(context.Background(), marathon.Preferences{Occasion: "halloween"}, idx, 5)
	if err != nil {
		t.Fatalf("selectSchedule returned error: %v", err)
	}

	if sel.Name != "Test Fest" {
		t.Fatalf("unexpected name %q", sel.Name)
	}
	if sel.Holiday != "halloween" {
		t.Fatalf("unexpected holiday %q", sel.Holiday)
	}
	ids := make([]string, 0, len(sel.Entries))
	for _, entry := range sel.Entries {
		ids = append(ids, entry.MovieID)
	}
	if got := strings.Join(ids, ","); got != "m1,m2,m3" {
		t.Fatalf("kept ids = %s, want m1,m2,m3", got)
	}
	if sel.Entries[0].Date != "2026-10-01" || sel.Entries[0].Reason != "opener" {
		t.Fatalf("unexpected first entry %+v", sel.Entries[0])
	}
	for _, entry := range sel.Entries {
		if entry.Pairings.Drinks == nil {
			t.Fatalf("entry %s should start with empty drinks", entry.MovieID)
		}
	}
}

func TestSelectScheduleLegacyHolidayKey(t *testing.T) {
	idx := testIndex(t, 1)
	client := &fakeOracle{
		respond: func(int, string, int) (string, error) {
			return `{"name": "Old Shape", "holiday": "christmas", "entries": [{"movieId": "m1", "date": "2026-12-24"}]}`, nil
		},
	}

	s := &selector{client: client, logger: logging.NewNop()}
	sel, err := s.selectSchedule(context.Background(), marathon.Preferences{}, idx, 1)
	if err != nil {
		t.Fatalf("selectSchedule returned error: %v", err)
	}
	if sel.Holiday != "christmas" {
		t.Fatalf("expected legacy holiday key to be honored, got %q", sel.Holiday)
	}
}

func TestSelectSchedulePromptMentionsTarget(t *testing.T) {
	idx := testIndex(t, 3)
	client := &fakeOracle{
		respond: func(int, string, int) (string, error) {
			return `{"name": "N", "entries": []}`, nil
		},
	}

	s := &selector{client: client, logger: logging.NewNop()}
	if _, err := s.selectSchedule(context.Background(), marathon.Preferences{}, idx, 3); err != nil {
		t.Fatalf("selectSchedule returned error: %v", err)
	}
	prompt := client.prompts[0]
	if !strings.Contains(prompt, "Schedule exactly 3 movies") {
		t.Fatalf("prompt missing count instruction:\n%s", prompt)
	}
	for _, id := range []string{"m1", "m2", "m3"} {
		if !strings.Contains(prompt, id) {
			t.Fatalf("prompt missing library id %s", id)
		}
	}
}

func TestSelectScheduleGenerateFailure(t *testing.T) {
	idx := testIndex(t, 1)
	client := &fakeOracle{
		respond: func(int, string, int) (string, error) {
			return "", errors.New("boom")
		},
	}

	s := &selector{client: client, logger: logging.NewNop()}
	_, err := s.selectSchedule(context.Background(), marathon.Preferences{}, idx, 1)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}

func TestSelectScheduleMissingCredential(t *testing.T) {
	idx := testIndex(t, 1)
	client := &fakeOracle{
		respond: func(int, string, int) (string, error) {
			return "", oracle.ErrNoCredential
		},
	}

	s := &selector{client: client, logger: logging.NewNop()}
	_, err := s.selectSchedule(context.Background(), marathon.Preferences{}, idx, 1)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSelectScheduleUnparseableResponse(t *testing.T) {
	idx := testIndex(t, 1)
	client := &fakeOracle{
		respond: func(int, string, int) (string, error) {
			return "I could not produce a schedule, sorry.", nil
		},
	}

	s := &selector{client: client, logger: logging.NewNop()}
	_, err := s.selectSchedule(context.Background(), marathon.Preferences{}, idx, 1)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	var parseErr *oracle.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected wrapped *ParseError, got %v", err)
	}
}
