// Package percentile blends weak heuristic signals into an estimated peer
// percentile and standing tier.
package percentile

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/fernwell/pulsecheck/internal/model"
)

// Blending constants. The successive pairwise averaging mirrors the original
// heuristic and is preserved as-is for compatibility.
const (
	basePercentile     = 50
	percentileCeiling  = 95
	efficiencyBonusMax = 20
)

// aiExperienceBonus maps the AI-experience answer to its additive bonus.
var aiExperienceBonus = map[string]float64{
	"none":     0,
	"explored": 10,
	"using":    30,
	"advanced": 50,
}

// VolumeLookup maps a unit's workload-volume answer values to peer
// percentiles for that volume.
type VolumeLookup struct {
	AnswerKey   string
	Percentiles map[string]float64
}

// Estimator blends workload volume, AI adoption and efficiency signals into
// a percentile estimate. Missing inputs degrade the estimate, never fail it.
type Estimator struct {
	volumeTables map[model.BusinessUnit]VolumeLookup
}

// NewEstimator creates an estimator over the per-unit volume lookup tables.
func NewEstimator(volumeTables map[model.BusinessUnit]VolumeLookup) *Estimator {
	return &Estimator{volumeTables: volumeTables}
}

// Estimate produces the blended percentile for the unit. The dimension
// summary is optional; when present its excellent-to-total ratio feeds an
// efficiency bonus.
func (e *Estimator) Estimate(ctx context.Context, unit model.BusinessUnit, answers model.AnswerSet, summary *Summary) model.PercentileEstimate {
	score := float64(basePercentile)
	var signals []string

	// Workload volume: simple two-point average with the looked-up peer
	// percentile, not a weighted blend.
	if lookup, ok := e.volumeTables[unit]; ok {
		if answer, ok := answers.Text(lookup.AnswerKey); ok {
			if peer, ok := lookup.Percentiles[answer]; ok {
				score = (score + peer) / 2
				signals = append(signals, fmt.Sprintf("workload volume %q at peer percentile %.0f", answer, peer))
			}
		}
	}

	// AI experience: additive bonus, clamped to the ceiling.
	if experience, ok := answers.Text("aiexperience"); ok {
		if bonus, ok := aiExperienceBonus[experience]; ok {
			score += bonus
			if score > percentileCeiling {
				score = percentileCeiling
			}
			if bonus > 0 {
				signals = append(signals, fmt.Sprintf("AI experience %q adds %.0f", experience, bonus))
			}
		}
	}

	// Efficiency: pairwise-average in a bonus proportional to the share of
	// excellent dimension metrics.
	if summary != nil && summary.TotalMetrics > 0 {
		bonus := summary.Ratio() * efficiencyBonusMax
		score = (score + (score + bonus)) / 2
		signals = append(signals, fmt.Sprintf("efficiency ratio %.2f adds %.1f", summary.Ratio(), bonus))
	}

	if score > percentileCeiling {
		score = percentileCeiling
	}
	if score < 0 {
		score = 0
	}

	final := int(math.Round(score))
	standing := model.StandingFor(final)
	slog.DebugContext(ctx, "estimated percentile",
		"unit", unit, "percentile", final, "standing", standing.ID)

	return model.PercentileEstimate{
		Percentile: final,
		Standing:   standing,
		Signals:    signals,
	}
}

// Summary is the slice of the dimension result the estimator consumes,
// declared here so the estimator does not depend on the dimension package.
type Summary struct {
	ExcellentMetrics int
	TotalMetrics     int
}

// Ratio returns the excellent-to-total metric ratio, zero when empty.
func (s Summary) Ratio() float64 {
	if s.TotalMetrics == 0 {
		return 0
	}
	return float64(s.ExcellentMetrics) / float64(s.TotalMetrics)
}
