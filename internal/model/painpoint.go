package model

import (
	"fmt"
	"sort"
)

// PainLevelInfo describes one intensity level on the 1–5 pain scale.
type PainLevelInfo struct {
	Label       string
	UrgencyTier string
	Multiplier  float64
}

// painLevels maps each pain level to its label and score multiplier.
// Multipliers strictly increase with level.
var painLevels = map[int]PainLevelInfo{
	1: {Label: "Barely noticeable", Multiplier: 1.0},
	2: {Label: "Annoying", Multiplier: 1.2},
	3: {Label: "Frustrating", Multiplier: 1.5},
	4: {Label: "Painful", Multiplier: 2.0},
	5: {Label: "Critical blocker", Multiplier: 3.0},
}

// UrgencyScale maps a pain level to its urgency tier.
var UrgencyScale = Scale{
	{Threshold: 5, Value: "critical"},
	{Threshold: 4, Value: "high"},
	{Threshold: 3, Value: "medium"},
	{Threshold: 0, Value: "low"},
}

// PainLevelFor returns the scale entry for a 1–5 pain level.
func PainLevelFor(level int) (PainLevelInfo, bool) {
	info, ok := painLevels[level]
	if !ok {
		return PainLevelInfo{}, false
	}
	info.UrgencyTier = UrgencyScale.Label(float64(level))
	return info, true
}

// frequencyMultipliers maps reported frequency to its score multiplier.
var frequencyMultipliers = map[string]float64{
	"hourly":    40,
	"daily":     20,
	"weekly":    5,
	"monthly":   1,
	"quarterly": 0.25,
	"rarely":    0.1,
}

// FrequencyMultiplier returns the multiplier for a frequency label.
// Unrecognized frequencies default to 1.
func FrequencyMultiplier(frequency string) float64 {
	if m, ok := frequencyMultipliers[frequency]; ok {
		return m
	}
	return 1
}

// PainPointDefinition is an immutable configuration record describing one
// recurring workflow friction registered under a business unit.
type PainPointDefinition struct {
	ID          string
	DisplayName string
	// Examples holds per-level illustrative text, keyed by pain level.
	Examples map[int]string
	// Solutions holds per-level AI solution suggestions, keyed by pain level.
	Solutions map[int][]string
}

// Validate ensures the definition has valid data.
func (d *PainPointDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("pain point id is required")
	}
	if d.DisplayName == "" {
		return fmt.Errorf("pain point display name is required")
	}
	for level := range d.Examples {
		if _, ok := painLevels[level]; !ok {
			return fmt.Errorf("example declared for invalid pain level %d", level)
		}
	}
	for level := range d.Solutions {
		if _, ok := painLevels[level]; !ok {
			return fmt.Errorf("solutions declared for invalid pain level %d", level)
		}
	}
	return nil
}

// ScoredPainPoint is one scored friction for a single assessment run.
// It is created from the answer set, never mutated, and discarded with the run.
type ScoredPainPoint struct {
	Definition    PainPointDefinition
	Frequency     string
	UrgencyTier   string
	LevelLabel    string
	Solutions     []string
	PainLevel     int
	PriorityScore float64
}

// ScoredPainPoints supports sorting by priority score descending.
type ScoredPainPoints []ScoredPainPoint

// Sort orders the pain points by priority score descending, breaking ties
// by definition ID for deterministic output.
func (p ScoredPainPoints) Sort() {
	sort.SliceStable(p, func(i, j int) bool {
		if p[i].PriorityScore != p[j].PriorityScore {
			return p[i].PriorityScore > p[j].PriorityScore
		}
		return p[i].Definition.ID < p[j].Definition.ID
	})
}
