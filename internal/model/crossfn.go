package model

import (
	"fmt"
	"sort"
)

// DetectionRule is one detection heuristic of a cross-functional pattern.
// The predicate reads the full answer set; Confidence is the weight this
// rule contributes when its predicate holds.
type DetectionRule struct {
	Predicate  func(AnswerSet) bool `json:"-"`
	Indicator  string               `json:"indicator"`
	Confidence float64              `json:"confidence"`
}

// Validate ensures the rule has valid data.
func (r *DetectionRule) Validate() error {
	if r.Predicate == nil {
		return fmt.Errorf("detection rule requires a predicate")
	}
	if r.Confidence <= 0 || r.Confidence > 1 {
		return fmt.Errorf("rule confidence must be in (0, 1], got %.2f", r.Confidence)
	}
	return nil
}

// ImpactFunc estimates one impact metric (e.g. hours wasted per week)
// from the answer set.
type ImpactFunc func(AnswerSet) float64

// SeverityBonus raises a detected pattern's severity when the named impact
// metric exceeds its threshold. Bonuses stack independently; total severity
// is capped at 1.0.
type SeverityBonus struct {
	Metric    string
	Threshold float64
	Bonus     float64
}

// CrossFunctionalPattern is an immutable configuration record for one
// systemic issue spanning multiple business units.
type CrossFunctionalPattern struct {
	Impacts         map[string]ImpactFunc `json:"-"`
	ID              string                `json:"id"`
	DisplayName     string                `json:"display_name"`
	Solution        string                `json:"solution"`
	DetectionRules  []DetectionRule       `json:"-"`
	InvolvedUnits   []BusinessUnit        `json:"involved_units"`
	RootCauses      []string              `json:"root_causes"`
	SeverityBonuses []SeverityBonus       `json:"-"`
}

// Validate ensures the pattern has valid data.
func (p *CrossFunctionalPattern) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pattern id is required")
	}
	if len(p.DetectionRules) == 0 {
		return fmt.Errorf("pattern %q declares no detection rules", p.ID)
	}
	if len(p.InvolvedUnits) < 2 {
		return fmt.Errorf("pattern %q must involve at least two business units", p.ID)
	}
	for i := range p.DetectionRules {
		if err := p.DetectionRules[i].Validate(); err != nil {
			return fmt.Errorf("pattern %q rule %d: %w", p.ID, i, err)
		}
	}
	for _, b := range p.SeverityBonuses {
		if _, ok := p.Impacts[b.Metric]; !ok {
			return fmt.Errorf("pattern %q bonus references unknown impact metric %q", p.ID, b.Metric)
		}
	}
	return nil
}

// DetectedPattern is one systemic issue that crossed the detection
// threshold during an assessment run.
type DetectedPattern struct {
	ImpactMetrics map[string]float64
	Pattern       CrossFunctionalPattern
	Indicators    []string
	Confidence    float64
	Severity      float64
	MatchedRules  int
}

// DetectedPatterns supports sorting by severity descending.
type DetectedPatterns []DetectedPattern

// Sort orders detections by severity descending, breaking ties by pattern ID.
func (d DetectedPatterns) Sort() {
	sort.SliceStable(d, func(i, j int) bool {
		if d[i].Severity != d[j].Severity {
			return d[i].Severity > d[j].Severity
		}
		return d[i].Pattern.ID < d[j].Pattern.ID
	})
}
