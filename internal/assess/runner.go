// Package assess runs the five scoring engines over one answer set and
// merges their outputs into a single report.
package assess

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fernwell/pulsecheck/internal/archetype"
	"github.com/fernwell/pulsecheck/internal/common"
	"github.com/fernwell/pulsecheck/internal/crossfn"
	"github.com/fernwell/pulsecheck/internal/dimension"
	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/fernwell/pulsecheck/internal/pain"
	"github.com/fernwell/pulsecheck/internal/percentile"
)

// Report is the merged output of one assessment run. It is immutable once
// built; callers may persist or render it freely.
type Report struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Pain        pain.Result              `json:"pain"`
	Archetypes  archetype.Result         `json:"archetypes"`
	Patterns    crossfn.Result           `json:"patterns"`
	Dimensions  dimension.Result         `json:"dimensions"`
	Percentile  model.PercentileEstimate `json:"percentile"`
	Unit        model.BusinessUnit       `json:"unit"`
	Fingerprint string                   `json:"fingerprint"`
}

// Runner owns the five engines and an optional report cache. Engines share
// no state, so the runner fans them out concurrently.
type Runner struct {
	pain       *pain.Engine
	archetypes *archetype.Matcher
	patterns   *crossfn.Detector
	dimensions *dimension.Aggregator
	percentile *percentile.Estimator
	cache      *Cache
}

// Option configures a Runner.
type Option func(*Runner)

// WithCache attaches an explicit report cache to the runner. The cache is
// passed in by the caller; the runner never creates a global one.
func WithCache(cache *Cache) Option {
	return func(r *Runner) {
		r.cache = cache
	}
}

// NewRunner assembles a runner from already-constructed engines.
func NewRunner(
	painEngine *pain.Engine,
	matcher *archetype.Matcher,
	detector *crossfn.Detector,
	aggregator *dimension.Aggregator,
	estimator *percentile.Estimator,
	opts ...Option,
) *Runner {
	r := &Runner{
		pain:       painEngine,
		archetypes: matcher,
		patterns:   detector,
		dimensions: aggregator,
		percentile: estimator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRunner builds a runner over the default configuration catalogs.
func NewDefaultRunner(questions *model.QuestionCatalog, opts ...Option) (*Runner, error) {
	detector, err := crossfn.NewDetector(crossfn.DefaultPatterns())
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern detector: %w", err)
	}
	return NewRunner(
		pain.NewEngine(pain.DefaultCatalog()),
		archetype.NewMatcher(archetype.DefaultCatalog()),
		detector,
		dimension.NewAggregator(questions),
		percentile.NewEstimator(percentile.DefaultVolumeTables()),
		opts...,
	), nil
}

// Run executes all engines against the answers. Four engines run
// concurrently; the percentile estimator runs last so it can consume the
// dimension summary. Savings may be nil when no time-savings figures exist.
func (r *Runner) Run(ctx context.Context, unit model.BusinessUnit, answers model.AnswerSet, savings *model.TimeSavings) (*Report, error) {
	if !unit.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownUnit, unit)
	}

	key := fingerprint(unit, answers, savings)
	if r.cache != nil {
		if report, ok := r.cache.Get(key); ok {
			slog.DebugContext(ctx, "report served from cache", "fingerprint", key)
			return report, nil
		}
	}

	report := &Report{
		Unit:        unit,
		GeneratedAt: time.Now().UTC(),
		Fingerprint: key,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Pain = r.pain.Score(gctx, unit, answers)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Archetypes = r.archetypes.Match(gctx, unit, answers)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Patterns = r.patterns.Detect(gctx, answers)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Dimensions = r.dimensions.Aggregate(gctx, unit, answers, savings)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assessment interrupted: %w", err)
	}

	summary := percentile.Summary{
		ExcellentMetrics: report.Dimensions.Summary.ExcellentMetrics,
		TotalMetrics:     report.Dimensions.Summary.TotalMetrics,
	}
	report.Percentile = r.percentile.Estimate(ctx, unit, answers, &summary)

	if r.cache != nil {
		r.cache.Put(key, report)
	}
	return report, nil
}

// fingerprint derives the deterministic cache key for one run's inputs.
func fingerprint(unit model.BusinessUnit, answers model.AnswerSet, savings *model.TimeSavings) string {
	h := sha256.New()
	fmt.Fprintf(h, "unit=%s;answers=%s;", unit, answers.Fingerprint())
	if savings != nil {
		fmt.Fprintf(h, "savings=%.4f/%.4f/%.4f;", savings.WeeklyHours, savings.MonthlyHours, savings.YearlyHours)
	}
	return hex.EncodeToString(h.Sum(nil))
}
