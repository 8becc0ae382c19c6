package planner

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"marquee/internal/library"
	"marquee/internal/logging"
	"marquee/internal/marathon"
	"marquee/internal/services"
	"marquee/internal/services/oracle"
)

// scheduleMaxTokens is the token budget for the single selection call.
const scheduleMaxTokens = 4096

// selection is the validated output of the schedule selection stage.
type selection struct {
	Name    string
	Holiday string
	Entries []marathon.ScheduleEntry
}

// schedulePayload mirrors the JSON object the selection prompt requests.
// Both holidayTag and the legacy holiday key are tolerated.
type schedulePayload struct {
	Name       string                 `json:"name"`
	HolidayTag string                 `json:"holidayTag"`
	Holiday    string                 `json:"holiday"`
	Entries    []scheduleEntryPayload `json:"entries"`
}

type scheduleEntryPayload struct {
	MovieID string `json:"movieId"`
	Date    string `json:"date"`
	Phase   string `json:"phase"`
	Reason  string `json:"aiReason"`
}

type selector struct {
	client oracle.Client
	logger *slog.Logger
}

// selectSchedule issues the single schedule-selection oracle call and
// validates the returned movie references against the library index. Any
// failure here is fatal to the run.
func (s *selector) selectSchedule(ctx context.Context, prefs marathon.Preferences, idx *library.Index, target int) (selection, error) {
	var out selection

	log := logging.WithContext(ctx, s.logger)
	prompt := buildSchedulePrompt(prefs, idx.Entries(), target)

	raw, err := s.client.GenerateText(ctx, prompt, scheduleMaxTokens)
	if err != nil {
		marker := services.ErrExternalTool
		if errors.Is(err, oracle.ErrNoCredential) {
			marker = services.ErrConfiguration
		}
		return out, services.Wrap(marker, stageSelect, "generate schedule", "", err)
	}

	var payload schedulePayload
	if err := oracle.DecodeObject(raw, &payload); err != nil {
		return out, services.Wrap(services.ErrExternalTool, stageSelect, "parse schedule", "", err)
	}

	out.Name = strings.TrimSpace(payload.Name)
	out.Holiday = strings.TrimSpace(payload.HolidayTag)
	if out.Holiday == "" {
		out.Holiday = strings.TrimSpace(payload.Holiday)
	}

	// Hallucination guard: unknown movie ids are dropped, not corrected, and
	// a repeated id keeps only its first occurrence. Oracle order is trusted
	// as approximately chronological and preserved.
	seen := make(map[string]struct{}, len(payload.Entries))
	out.Entries = make([]marathon.ScheduleEntry, 0, len(payload.Entries))
	for _, entry := range payload.Entries {
		movieID := strings.TrimSpace(entry.MovieID)
		if !idx.Contains(movieID) {
			log.Warn("dropping schedule entry with unknown movie id",
				logging.String("movie_id", movieID),
				logging.String("date", entry.Date))
			continue
		}
		if _, dup := seen[movieID]; dup {
			log.Warn("dropping duplicate schedule entry",
				logging.String("movie_id", movieID),
				logging.String("date", entry.Date))
			continue
		}
		seen[movieID] = struct{}{}
		out.Entries = append(out.Entries, marathon.ScheduleEntry{
			MovieID:  movieID,
			Date:     strings.TrimSpace(entry.Date),
			Phase:    strings.TrimSpace(entry.Phase),
			Reason:   strings.TrimSpace(entry.Reason),
			Pairings: marathon.PairingSet{Drinks: []marathon.DrinkOption{}},
		})
	}

	log.Info("schedule selected",
		logging.Int("requested", target),
		logging.Int("returned", len(payload.Entries)),
		logging.Int("kept", len(out.Entries)))
	return out, nil
}
