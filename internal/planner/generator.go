package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"marquee/internal/library"
	"marquee/internal/logging"
	"marquee/internal/marathon"
	"marquee/internal/services"
	"marquee/internal/services/oracle"
)

const (
	stageNormalize = "normalize"
	stageSelect    = "select"
	stagePairings  = "pairings"
)

// Request carries one marathon generation invocation. Credential optionally
// overrides the process-wide oracle key for this run only.
type Request struct {
	Preferences marathon.Preferences
	Library     *library.Index
	Credential  string
}

// Generator orchestrates the full pipeline. It owns no mutable state across
// runs; concurrent Generate calls only share the oracle endpoint itself.
type Generator struct {
	factory oracle.Factory
	logger  *slog.Logger
	sleep   Sleeper
	now     func() time.Time
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithSleeper overrides how inter-batch pauses are performed (useful for tests).
func WithSleeper(sleep Sleeper) GeneratorOption {
	return func(g *Generator) {
		g.sleep = sleep
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator constructs a Generator using the supplied oracle client factory.
func NewGenerator(factory oracle.Factory, logger *slog.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{
		factory: factory,
		logger:  logging.NewComponentLogger(logger, "planner"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the pipeline once and returns the assembled marathon.
//
// Failures before or during schedule selection abort the run with no partial
// result. Once selection succeeds the caller always receives a complete
// marathon; entries whose pairing enrichment failed simply carry empty
// pairing data.
func (g *Generator) Generate(ctx context.Context, req Request) (*marathon.Marathon, error) {
	ctx = services.WithRequestID(ctx, uuid.NewString())

	if req.Library.Len() == 0 {
		return nil, services.Wrap(services.ErrValidation, stageNormalize, "check library", library.ErrEmptyIndex.Error(), nil)
	}

	normalized, err := normalizeRange(req.Preferences, g.now())
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stageNormalize, "resolve dates", "", err)
	}
	prefs := normalized.apply(req.Preferences)

	client, err := g.factory(req.Credential)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, stageSelect, "build oracle client", "", err)
	}

	target := normalized.NumDays
	if libSize := req.Library.Len(); libSize < target {
		target = libSize
	}

	selCtx := services.WithStage(ctx, stageSelect)
	sel, err := (&selector{client: client, logger: g.logger}).selectSchedule(selCtx, prefs, req.Library, target)
	if err != nil {
		return nil, err
	}

	pairCtx := services.WithStage(ctx, stagePairings)
	enr := &enricher{client: client, logger: g.logger, sleep: g.sleep}
	enr.enrich(pairCtx, sel.Entries, req.Library, prefs)

	result := assemble(sel, sel.Entries, prefs, g.now())
	logging.WithContext(ctx, g.logger).Info("marathon generated",
		logging.String("marathon_id", result.ID),
		logging.String("name", result.Name),
		logging.Int("entries", len(result.Entries)))
	return result, nil
}
