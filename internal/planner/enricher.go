package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"marquee/internal/library"
	"marquee/internal/logging"
	"marquee/internal/marathon"
	"marquee/internal/services/oracle"
)

const (
	// pairingMaxTokens is the token budget for each per-entry pairing call.
	pairingMaxTokens = 1024
	// pairingBatchSize caps concurrent outbound pairing calls.
	pairingBatchSize = 5
	// pairingBatchPause paces successive batches against oracle rate limits.
	pairingBatchPause = 500 * time.Millisecond
)

// Sleeper performs inter-batch pauses. Tests inject a recording
// implementation; production uses time.Sleep.
type Sleeper func(time.Duration)

// pairingPayload mirrors the JSON object the pairing prompt requests.
type pairingPayload struct {
	Drinks []marathon.DrinkOption `json:"drinks"`
	Food   *marathon.FoodOption   `json:"food"`
}

type enricher struct {
	client oracle.Client
	logger *slog.Logger
	sleep  Sleeper
}

// enrich attaches a pairing set to every schedule entry in place. Entries
// are processed in fixed-size batches; calls within a batch run
// concurrently and the next batch starts only after a fixed pause. A failed
// call never propagates: the affected entry keeps empty drinks and no food,
// and its neighbours are unaffected. Entry identity (movie, date, phase) is
// never altered here.
func (e *enricher) enrich(ctx context.Context, entries []marathon.ScheduleEntry, idx *library.Index, prefs marathon.Preferences) {
	log := logging.WithContext(ctx, e.logger)
	drinkPrefs := drinkPreferenceList(prefs.DrinkPrefs)

	for offset := 0; offset < len(entries); offset += pairingBatchSize {
		if offset > 0 {
			e.pause()
		}
		limit := offset + pairingBatchSize
		if limit > len(entries) {
			limit = len(entries)
		}

		batch := pool.New().WithMaxGoroutines(pairingBatchSize)
		for i := offset; i < limit; i++ {
			entry := &entries[i]
			batch.Go(func() {
				e.enrichOne(ctx, entry, idx, prefs.Occasion, drinkPrefs, log)
			})
		}
		batch.Wait()
	}
}

// enrichOne runs a single pairing call, swallowing every failure locally.
func (e *enricher) enrichOne(ctx context.Context, entry *marathon.ScheduleEntry, idx *library.Index, occasion, drinkPrefs string, log *slog.Logger) {
	entry.Pairings = marathon.PairingSet{Drinks: []marathon.DrinkOption{}}

	movie, ok := idx.ByID(entry.MovieID)
	if !ok {
		// The selector only emits validated ids; tolerate anyway.
		log.Warn("pairing skipped for unknown movie id", logging.String("movie_id", entry.MovieID))
		return
	}

	raw, err := e.client.GenerateText(ctx, buildPairingPrompt(movie, occasion, drinkPrefs), pairingMaxTokens)
	if err != nil {
		log.Warn("pairing generation failed, continuing without pairings",
			logging.String("movie_id", entry.MovieID),
			logging.String("title", movie.Title),
			logging.Error(err))
		return
	}

	var payload pairingPayload
	if err := oracle.DecodeObject(raw, &payload); err != nil {
		log.Warn("pairing response unparseable, continuing without pairings",
			logging.String("movie_id", entry.MovieID),
			logging.String("title", movie.Title),
			logging.Error(err))
		return
	}

	if payload.Drinks == nil {
		payload.Drinks = []marathon.DrinkOption{}
	}
	entry.Pairings = marathon.PairingSet{Drinks: payload.Drinks, Food: payload.Food}
}

func (e *enricher) pause() {
	if e.sleep != nil {
		e.sleep(pairingBatchPause)
		return
	}
	time.Sleep(pairingBatchPause)
}
