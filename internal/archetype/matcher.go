// Package archetype matches respondents against named behavioral profiles.
package archetype

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fernwell/pulsecheck/internal/model"
)

// StrongMatchThreshold is the match score at which the primary archetype is
// reported as a confident match rather than a weak candidate.
const StrongMatchThreshold = 0.6

// Result holds the ranked archetype matches for one business unit.
// Primary is nil when the unit has no registered archetypes.
type Result struct {
	Primary    *model.ArchetypeMatch
	Alternates model.ArchetypeMatches
	Strong     bool
}

// Matcher scores respondents against per-unit archetype catalogs.
type Matcher struct {
	catalog map[model.BusinessUnit][]model.ArchetypeDefinition
}

// NewMatcher creates a matcher over the given per-unit catalog.
func NewMatcher(catalog map[model.BusinessUnit][]model.ArchetypeDefinition) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match evaluates every archetype registered under the unit and returns the
// ranked result. Signals whose answer key is absent count toward neither the
// matched nor the considered total.
func (m *Matcher) Match(ctx context.Context, unit model.BusinessUnit, answers model.AnswerSet) Result {
	definitions, ok := m.catalog[unit]
	if !ok || len(definitions) == 0 {
		slog.DebugContext(ctx, "no archetypes registered for unit", "unit", unit)
		return Result{}
	}

	matches := make(model.ArchetypeMatches, 0, len(definitions))
	for _, def := range definitions {
		matched, considered := 0, 0
		for key, sig := range def.Signals {
			answer, ok := answers[key]
			if !ok {
				continue
			}
			considered++
			if signalMatches(sig, answer) {
				matched++
			}
		}
		matches = append(matches, model.NewArchetypeMatch(def, matched, considered))
	}

	matches.Sort()

	result := Result{
		Primary: &matches[0],
		Strong:  matches[0].MatchScore >= StrongMatchThreshold,
	}
	if len(matches) > 1 {
		result.Alternates = matches[1:]
	}
	return result
}

// signalMatches evaluates one declared signal against an answer using the
// signal's tagged matching strategy.
func signalMatches(sig model.Signal, answer model.Answer) bool {
	switch sig.Kind {
	case model.SignalValueSet:
		for _, v := range sig.Values {
			if answer.Contains(v) {
				return true
			}
		}
		return false
	case model.SignalRange:
		n, ok := answer.Number()
		if !ok {
			return false
		}
		return n >= sig.Min && n <= sig.Max
	case model.SignalContains:
		return strings.Contains(strings.ToLower(answer.Text()), strings.ToLower(sig.Pattern))
	default:
		return false
	}
}
