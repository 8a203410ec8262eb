// Package dimension combines per-answer automation signals into a weighted
// multi-dimension impact score and grade.
package dimension

import (
	"context"
	"log/slog"
	"math"

	"github.com/fernwell/pulsecheck/internal/model"
)

// Normalization scales and rate constants.
const (
	timeScaleMaxHours = 50     // weekly hours mapped onto [0,100]
	costScaleMax      = 150000 // annual currency units mapped onto [0,100]
	hourlyRate        = 45
	weeksPerYear      = 52
)

// Savings-percentage tiers and the points each tier adds to every
// sub-metric of a heuristic dimension.
const (
	tierHighCutoff = 60
	tierMidCutoff  = 30

	qualityHighPoints = 15
	qualityMidPoints  = 8
	qualityLowPoints  = 3

	satisfactionHighPoints = 12
	satisfactionMidPoints  = 6
	satisfactionLowPoints  = 3

	riskHighPoints = 10
	riskMidPoints  = 5
	riskLowPoints  = 2
)

// excellentCutoff marks a dimension as "excellent" for the comparative
// estimator's efficiency ratio.
const excellentCutoff = 70

// riskUnitMultipliers boost risk-reduction credit for units where errors
// carry regulatory or contractual exposure.
var riskUnitMultipliers = map[model.BusinessUnit]float64{
	model.UnitCompliance: 1.5,
	model.UnitContracts:  1.3,
}

// Summary is the condensed view other engines consume.
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

// Result is one aggregation run's output.
type Result struct {
	Overall model.OverallScore
	Summary Summary
}

// Aggregator scores the five impact dimensions from answers, the question
// catalog, and externally supplied basic time-savings figures.
type Aggregator struct {
	catalog *model.QuestionCatalog
}

// NewAggregator creates an aggregator over the given question catalog.
func NewAggregator(catalog *model.QuestionCatalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// Aggregate computes all five dimension scores and the weighted overall
// score. Dimensions with no contributing input stay in the breakdown,
// normalized to 0, but do not dilute the overall score.
func (a *Aggregator) Aggregate(ctx context.Context, unit model.BusinessUnit, answers model.AnswerSet, savings *model.TimeSavings) Result {
	dims := []model.DimensionScore{
		a.timeDimension(savings),
		a.costDimension(savings),
		a.heuristicDimension(model.DimensionQuality, answers, qualitySubMetrics(), qualityHighPoints, qualityMidPoints, qualityLowPoints, 1.0),
		a.heuristicDimension(model.DimensionSatisfaction, answers, satisfactionSubMetrics(), satisfactionHighPoints, satisfactionMidPoints, satisfactionLowPoints, 1.0),
		a.heuristicDimension(model.DimensionRisk, answers, riskSubMetrics(), riskHighPoints, riskMidPoints, riskLowPoints, riskMultiplier(unit)),
	}

	overall := combine(dims)
	slog.DebugContext(ctx, "aggregated dimension scores",
		"unit", unit, "score", overall.Score, "grade", overall.Grade)

	summary := Summary{TotalMetrics: len(dims)}
	for _, d := range dims {
		if d.Normalized >= excellentCutoff {
			summary.ExcellentMetrics++
		}
	}

	return Result{Overall: overall, Summary: summary}
}

// timeDimension normalizes externally computed weekly hours saved onto a
// fixed [0,50]-hour scale. The figures are consumed as-is, never recomputed.
func (a *Aggregator) timeDimension(savings *model.TimeSavings) model.DimensionScore {
	d := model.DimensionScore{
		ID:     model.DimensionTimeSaved,
		Unit:   "hours/week",
		Weight: model.DimensionWeights[model.DimensionTimeSaved],
	}
	if savings == nil {
		d.ImpactLabel = model.ImpactScale.Label(0)
		return d
	}
	d.HasSignal = true
	d.RawValue = savings.WeeklyHours
	d.Normalized = clamp(savings.WeeklyHours/timeScaleMaxHours*100, 0, 100)
	d.Contribution = d.Normalized * d.Weight
	d.ImpactLabel = model.ImpactScale.Label(d.Normalized)
	return d
}

// costDimension annualizes weekly hours at a fixed hourly rate and
// normalizes onto a fixed currency scale.
func (a *Aggregator) costDimension(savings *model.TimeSavings) model.DimensionScore {
	d := model.DimensionScore{
		ID:     model.DimensionCostSaved,
		Unit:   "currency/year",
		Weight: model.DimensionWeights[model.DimensionCostSaved],
	}
	if savings == nil {
		d.ImpactLabel = model.ImpactScale.Label(0)
		return d
	}
	d.HasSignal = true
	d.RawValue = savings.WeeklyHours * hourlyRate * weeksPerYear
	d.Normalized = clamp(d.RawValue/costScaleMax*100, 0, 100)
	d.Contribution = d.Normalized * d.Weight
	d.ImpactLabel = model.ImpactScale.Label(d.Normalized)
	return d
}

// heuristicDimension accumulates tiered points into the dimension's
// sub-metrics for every answered option with a declared savings percentage,
// then averages the sub-metrics and clamps to [0,100].
func (a *Aggregator) heuristicDimension(id model.DimensionID, answers model.AnswerSet, subMetrics []string, high, mid, low float64, multiplier float64) model.DimensionScore {
	d := model.DimensionScore{
		ID:         id,
		Unit:       "points",
		Weight:     model.DimensionWeights[id],
		SubMetrics: make(map[string]float64, len(subMetrics)),
	}
	for _, name := range subMetrics {
		d.SubMetrics[name] = 0
	}

	// Tier hits are counted as integers and converted to points once, so
	// map iteration order never reaches the float accumulation and repeated
	// runs over the same answers stay byte-identical.
	var highHits, midHits, lowHits int
	for questionID, answer := range answers {
		for _, value := range answer.Values() {
			opt, ok := a.catalog.Option(questionID, value)
			if !ok {
				continue
			}

			switch {
			case opt.AutomationSavingsPercent > tierHighCutoff:
				highHits++
			case opt.AutomationSavingsPercent > tierMidCutoff:
				midHits++
			case opt.AutomationSavingsPercent > 0:
				lowHits++
			}
		}
	}

	points := (float64(highHits)*high + float64(midHits)*mid + float64(lowHits)*low) * multiplier
	if highHits+midHits+lowHits > 0 {
		d.HasSignal = true
		for _, name := range subMetrics {
			d.SubMetrics[name] = points
		}
	}

	d.RawValue = points
	d.Normalized = clamp(d.RawValue, 0, 100)
	if d.HasSignal {
		d.Contribution = d.Normalized * d.Weight
	}
	d.ImpactLabel = model.ImpactScale.Label(d.Normalized)
	return d
}

// combine merges present dimensions into the weighted overall score,
// renormalized by the weight actually present.
func combine(dims []model.DimensionScore) model.OverallScore {
	overall := model.OverallScore{Dimensions: dims}

	weightedSum := 0.0
	for _, d := range dims {
		if !d.HasSignal {
			continue
		}
		weightedSum += d.Contribution
		overall.WeightPresent += d.Weight
	}

	if overall.WeightPresent > 0 {
		overall.Score = weightedSum / overall.WeightPresent
	}
	overall.Score = clamp(overall.Score, 0, 100)
	overall.Grade = model.GradeScale.Label(overall.Score)
	return overall
}

func riskMultiplier(unit model.BusinessUnit) float64 {
	if m, ok := riskUnitMultipliers[unit]; ok {
		return m
	}
	return 1.0
}

func qualitySubMetrics() []string {
	return []string{"accuracy", "consistency", "bias_reduction", "error_rate"}
}

func satisfactionSubMetrics() []string {
	return []string{"workload_relief", "stress_reduction", "focus_time"}
}

func riskSubMetrics() []string {
	return []string{"compliance_coverage", "audit_readiness", "error_exposure"}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
