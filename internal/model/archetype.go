package model

import (
	"fmt"
	"math"
	"sort"
)

// SignalKind identifies the matching strategy a signal uses.
type SignalKind int

// Signal kinds. The shape is an explicit tag, never inferred from the
// runtime type of the expected value.
const (
	// SignalValueSet matches when the answer equals one of the declared values.
	SignalValueSet SignalKind = iota
	// SignalRange matches when the numeric-parsed answer falls within [Min, Max].
	SignalRange
	// SignalContains matches when the answer text contains the pattern,
	// case-insensitively.
	SignalContains
)

// Signal is one expected answer for an archetype, tagged with its
// matching strategy.
type Signal struct {
	Pattern string
	Values  []string
	Min     float64
	Max     float64
	Kind    SignalKind
}

// ValueSetSignal declares a set-membership signal.
func ValueSetSignal(values ...string) Signal {
	return Signal{Kind: SignalValueSet, Values: values}
}

// RangeSignal declares an inclusive numeric range signal.
func RangeSignal(min, max float64) Signal {
	return Signal{Kind: SignalRange, Min: min, Max: max}
}

// ContainsSignal declares a case-insensitive substring signal.
func ContainsSignal(pattern string) Signal {
	return Signal{Kind: SignalContains, Pattern: pattern}
}

// Validate ensures the signal's declared shape is usable.
func (s Signal) Validate() error {
	switch s.Kind {
	case SignalValueSet:
		if len(s.Values) == 0 {
			return fmt.Errorf("value set signal requires at least one value")
		}
	case SignalRange:
		if s.Min > s.Max {
			return fmt.Errorf("range signal min %.2f exceeds max %.2f", s.Min, s.Max)
		}
	case SignalContains:
		if s.Pattern == "" {
			return fmt.Errorf("contains signal requires a pattern")
		}
	default:
		return fmt.Errorf("unknown signal kind %d", s.Kind)
	}
	return nil
}

// ArchetypeDefinition is an immutable configuration record describing one
// named behavioral profile via its expected answer signals.
type ArchetypeDefinition struct {
	Signals     map[string]Signal
	ID          string
	DisplayName string
	Description string
}

// Validate ensures the definition has valid data.
func (d *ArchetypeDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("archetype id is required")
	}
	if d.DisplayName == "" {
		return fmt.Errorf("archetype display name is required")
	}
	for key, sig := range d.Signals {
		if err := sig.Validate(); err != nil {
			return fmt.Errorf("invalid signal for answer key %q: %w", key, err)
		}
	}
	return nil
}

// ArchetypeMatch scores one archetype against a respondent's answers.
// MatchScore counts only signals whose answer key was present.
type ArchetypeMatch struct {
	Definition      ArchetypeDefinition
	MatchScore      float64
	MatchPercentage int
	MatchedSignals  int
	TotalSignals    int
}

// NewArchetypeMatch computes the score for matched out of considered signals.
// Zero considered signals yields a zero score, not a division error.
func NewArchetypeMatch(def ArchetypeDefinition, matched, considered int) ArchetypeMatch {
	score := 0.0
	if considered > 0 {
		score = float64(matched) / float64(considered)
	}
	return ArchetypeMatch{
		Definition:      def,
		MatchedSignals:  matched,
		TotalSignals:    considered,
		MatchScore:      score,
		MatchPercentage: int(math.Round(score * 100)),
	}
}

// ArchetypeMatches supports ranking by match score descending.
type ArchetypeMatches []ArchetypeMatch

// Sort orders matches by score descending, breaking ties by archetype ID.
func (m ArchetypeMatches) Sort() {
	sort.SliceStable(m, func(i, j int) bool {
		if m[i].MatchScore != m[j].MatchScore {
			return m[i].MatchScore > m[j].MatchScore
		}
		return m[i].Definition.ID < m[j].Definition.ID
	})
}
