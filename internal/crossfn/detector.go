// Package crossfn detects systemic issues whose signals span business units.
package crossfn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fernwell/pulsecheck/internal/model"
)

// DetectionThreshold is the minimum averaged rule confidence at which a
// pattern is reported.
const DetectionThreshold = 0.7

// maxSeverity caps severity after bonuses.
const maxSeverity = 1.0

// Summary aggregates a detection run for the top-line message.
type Summary struct {
	Headline         string
	InvolvedUnits    []model.BusinessUnit
	PatternCount     int
	TotalHoursWasted float64
}

// Result is the outcome of one detection run. Zero detected patterns is a
// valid, healthy outcome.
type Result struct {
	Detected model.DetectedPatterns
	Summary  Summary
}

// Detector evaluates cross-functional patterns against a full answer set.
type Detector struct {
	patterns []model.CrossFunctionalPattern
}

// NewDetector creates a detector over the given patterns. Invalid patterns
// are rejected up front so a bad catalog fails at load, not mid-assessment.
func NewDetector(patterns []model.CrossFunctionalPattern) (*Detector, error) {
	for i := range patterns {
		if err := patterns[i].Validate(); err != nil {
			return nil, fmt.Errorf("failed to load cross-functional pattern: %w", err)
		}
	}
	return &Detector{patterns: patterns}, nil
}

// Detect evaluates every pattern's rules against the answers. A pattern's
// confidence is the mean confidence of the rules whose predicate held;
// rules that did not fire contribute to neither sum nor denominator.
func (d *Detector) Detect(ctx context.Context, answers model.AnswerSet) Result {
	var detected model.DetectedPatterns

	for _, pattern := range d.patterns {
		confidenceSum := 0.0
		matched := 0
		var indicators []string

		for _, rule := range pattern.DetectionRules {
			if rule.Predicate(answers) {
				confidenceSum += rule.Confidence
				matched++
				if rule.Indicator != "" {
					indicators = append(indicators, rule.Indicator)
				}
			}
		}

		if matched == 0 {
			continue
		}
		confidence := confidenceSum / float64(matched)
		if confidence < DetectionThreshold {
			slog.DebugContext(ctx, "pattern below detection threshold",
				"pattern", pattern.ID, "confidence", confidence)
			continue
		}

		impacts := make(map[string]float64, len(pattern.Impacts))
		for metric, calc := range pattern.Impacts {
			impacts[metric] = calc(answers)
		}

		severity := confidence
		for _, bonus := range pattern.SeverityBonuses {
			if impacts[bonus.Metric] > bonus.Threshold {
				severity += bonus.Bonus
			}
		}
		if severity > maxSeverity {
			severity = maxSeverity
		}

		detected = append(detected, model.DetectedPattern{
			Pattern:       pattern,
			Confidence:    confidence,
			Severity:      severity,
			MatchedRules:  matched,
			Indicators:    indicators,
			ImpactMetrics: impacts,
		})
	}

	detected.Sort()

	return Result{
		Detected: detected,
		Summary:  summarize(detected),
	}
}

// summarize builds the aggregate view used for the top-line message.
func summarize(detected model.DetectedPatterns) Summary {
	summary := Summary{PatternCount: len(detected)}
	if len(detected) == 0 {
		summary.Headline = "No systemic cross-functional issues detected."
		return summary
	}

	seen := make(map[model.BusinessUnit]bool)
	for _, dp := range detected {
		for _, unit := range dp.Pattern.InvolvedUnits {
			if !seen[unit] {
				seen[unit] = true
				summary.InvolvedUnits = append(summary.InvolvedUnits, unit)
			}
		}
		summary.TotalHoursWasted += dp.ImpactMetrics[MetricHoursWasted]
	}

	summary.Headline = fmt.Sprintf(
		"%d systemic issue(s) across %d business unit(s), costing an estimated %.0f hours per week.",
		summary.PatternCount, len(summary.InvolvedUnits), summary.TotalHoursWasted)
	return summary
}
