// Package pain scores per-topic workflow frictions into a ranked pain list.
package pain

import (
	"context"
	"log/slog"

	"github.com/fernwell/pulsecheck/internal/model"
)

// Result is the outcome of scoring one business unit's pain answers.
// A unit with no registered pain points, or no answered pain questions,
// yields an empty result rather than an error.
type Result struct {
	Ranked         model.ScoredPainPoints
	Critical       model.ScoredPainPoints
	Moderate       model.ScoredPainPoints
	Minor          model.ScoredPainPoints
	AvgPainLevel   float64
	PainPercentage float64
	ScoredCount    int
}

// Engine converts pain-level and frequency answers into priority-ordered
// pain points. Configuration is loaded once and read-only thereafter.
type Engine struct {
	catalog map[model.BusinessUnit][]model.PainPointDefinition
}

// NewEngine creates a pain engine over the given per-unit catalog.
func NewEngine(catalog map[model.BusinessUnit][]model.PainPointDefinition) *Engine {
	return &Engine{catalog: catalog}
}

// Score evaluates every registered pain point for the unit against the
// answers. Pain points without a pain-level answer are skipped.
func (e *Engine) Score(ctx context.Context, unit model.BusinessUnit, answers model.AnswerSet) Result {
	definitions, ok := e.catalog[unit]
	if !ok || len(definitions) == 0 {
		slog.DebugContext(ctx, "no pain points registered for unit", "unit", unit)
		return Result{}
	}

	var result Result
	totalLevels := 0

	for _, def := range definitions {
		level, ok := answers.Number(def.ID + "_pain")
		if !ok {
			continue
		}
		painLevel := int(level)
		info, ok := model.PainLevelFor(painLevel)
		if !ok {
			continue
		}

		frequency, _ := answers.Text(def.ID + "_frequency")
		priority := float64(painLevel) * info.Multiplier * model.FrequencyMultiplier(frequency)

		scored := model.ScoredPainPoint{
			Definition:    def,
			PainLevel:     painLevel,
			LevelLabel:    info.Label,
			UrgencyTier:   info.UrgencyTier,
			Frequency:     frequency,
			PriorityScore: priority,
			Solutions:     accumulateSolutions(def, painLevel),
		}

		result.Ranked = append(result.Ranked, scored)
		totalLevels += painLevel

		switch {
		case painLevel >= 4:
			result.Critical = append(result.Critical, scored)
		case painLevel == 3:
			result.Moderate = append(result.Moderate, scored)
		default:
			result.Minor = append(result.Minor, scored)
		}
	}

	result.ScoredCount = len(result.Ranked)
	if result.ScoredCount > 0 {
		result.AvgPainLevel = float64(totalLevels) / float64(result.ScoredCount)
		result.PainPercentage = 100 * float64(totalLevels) / (5 * float64(result.ScoredCount))
	}

	result.Ranked.Sort()
	result.Critical.Sort()
	result.Moderate.Sort()
	result.Minor.Sort()

	return result
}

// accumulateSolutions gathers AI solution suggestions from the matched level
// down to level 3 inclusive, de-duplicated in first-seen order. Levels below
// 3 are minor frictions and accumulate nothing.
func accumulateSolutions(def model.PainPointDefinition, level int) []string {
	var solutions []string
	seen := make(map[string]bool)

	for l := level; l >= 3; l-- {
		for _, s := range def.Solutions[l] {
			if seen[s] {
				continue
			}
			seen[s] = true
			solutions = append(solutions, s)
		}
	}
	return solutions
}
