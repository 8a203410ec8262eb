package crossfn

import "github.com/fernwell/pulsecheck/internal/model"

// Impact metric names shared between pattern definitions and the summary.
const (
	MetricHoursWasted    = "hours_wasted"
	MetricCandidatesLost = "candidates_lost"
	MetricRecordsAtRisk  = "records_at_risk"
)

// Severity bonus constants. Two independent +0.1 bonuses may stack; total
// severity is capped at 1.0 by the detector.
const (
	severityBonus           = 0.1
	hoursWastedThreshold    = 10
	candidatesLostThreshold = 10
	recordsAtRiskThreshold  = 25
)

// painAtLeast returns a predicate that fires when the given pain question
// was answered at or above the level.
func painAtLeast(key string, level float64) func(model.AnswerSet) bool {
	return func(answers model.AnswerSet) bool {
		n, ok := answers.Number(key + "_pain")
		return ok && n >= level
	}
}

// answerIs returns a predicate that fires when the answer equals one of the
// given values.
func answerIs(key string, values ...string) func(model.AnswerSet) bool {
	return func(answers model.AnswerSet) bool {
		a, ok := answers[key]
		if !ok {
			return false
		}
		for _, v := range values {
			if a.Contains(v) {
				return true
			}
		}
		return false
	}
}

// hoursFromPain estimates weekly hours wasted from a pain level and the
// frequency multiplier of the same question.
func hoursFromPain(key string, hoursPerLevel float64) model.ImpactFunc {
	return func(answers model.AnswerSet) float64 {
		level, ok := answers.Number(key + "_pain")
		if !ok {
			return 0
		}
		frequency, _ := answers.Text(key + "_frequency")
		weight := model.FrequencyMultiplier(frequency)
		if weight > 20 {
			weight = 20
		}
		return level * hoursPerLevel * weight / 20
	}
}

// DefaultPatterns returns the default cross-functional pattern catalog.
func DefaultPatterns() []model.CrossFunctionalPattern {
	return []model.CrossFunctionalPattern{
		{
			ID:            "pipeline_stall",
			DisplayName:   "Candidate pipeline stall",
			InvolvedUnits: []model.BusinessUnit{model.UnitSourcing, model.UnitScheduling},
			DetectionRules: []model.DetectionRule{
				{
					Predicate:  painAtLeast("resume_screening", 4),
					Confidence: 0.8,
					Indicator:  "Severe resume screening backlog",
				},
				{
					Predicate:  painAtLeast("interview_coordination", 3),
					Confidence: 0.75,
					Indicator:  "Interview scheduling friction",
				},
				{
					Predicate:  answerIs("sourcing_time_to_fill", "4-6_weeks", "6_plus_weeks"),
					Confidence: 0.7,
					Indicator:  "Time-to-fill beyond four weeks",
				},
			},
			Impacts: map[string]model.ImpactFunc{
				MetricHoursWasted: hoursFromPain("resume_screening", 1.5),
				MetricCandidatesLost: func(answers model.AnswerSet) float64 {
					roles, ok := answers.Number("sourcing_active_roles")
					if !ok {
						return 0
					}
					return roles * 0.8
				},
			},
			SeverityBonuses: []model.SeverityBonus{
				{Metric: MetricCandidatesLost, Threshold: candidatesLostThreshold, Bonus: severityBonus},
				{Metric: MetricHoursWasted, Threshold: hoursWastedThreshold, Bonus: severityBonus},
			},
			RootCauses: []string{
				"Screening and scheduling queues are managed in separate tools",
				"No shared view of candidate state across sourcing and scheduling",
			},
			Solution: "Connect screening output directly to scheduling with automated slot offers, so candidates never sit between queues.",
		},
		{
			ID:            "compliance_drag",
			DisplayName:   "Compliance drag on operations",
			InvolvedUnits: []model.BusinessUnit{model.UnitCompliance, model.UnitScheduling, model.UnitAdmin},
			DetectionRules: []model.DetectionRule{
				{
					Predicate:  painAtLeast("credential_tracking", 4),
					Confidence: 0.85,
					Indicator:  "Credential tracking consumes significant manual effort",
				},
				{
					Predicate:  answerIs("compliance_tracking_tool", "spreadsheet", "paper"),
					Confidence: 0.75,
					Indicator:  "Compliance tracked outside a dedicated system",
				},
				{
					Predicate:  painAtLeast("shift_conflicts", 3),
					Confidence: 0.7,
					Indicator:  "Credential checks feed back into scheduling conflicts",
				},
			},
			Impacts: map[string]model.ImpactFunc{
				MetricHoursWasted: hoursFromPain("credential_tracking", 2),
				MetricRecordsAtRisk: func(answers model.AnswerSet) float64 {
					n, ok := answers.Number("compliance_tracked_records")
					if !ok {
						return 0
					}
					return n * 0.1
				},
			},
			SeverityBonuses: []model.SeverityBonus{
				{Metric: MetricHoursWasted, Threshold: hoursWastedThreshold, Bonus: severityBonus},
				{Metric: MetricRecordsAtRisk, Threshold: recordsAtRiskThreshold, Bonus: severityBonus},
			},
			RootCauses: []string{
				"Credential data lives in spreadsheets disconnected from scheduling",
				"Expiry checks happen on a calendar cadence instead of at assignment time",
			},
			Solution: "Automate credential verification at scheduling time and surface expiries to compliance before they block shifts.",
		},
		{
			ID:            "paperwork_loop",
			DisplayName:   "Contract-to-admin paperwork loop",
			InvolvedUnits: []model.BusinessUnit{model.UnitContracts, model.UnitAdmin},
			DetectionRules: []model.DetectionRule{
				{
					Predicate:  painAtLeast("contract_review", 3),
					Confidence: 0.75,
					Indicator:  "Contract review backlog",
				},
				{
					Predicate:  painAtLeast("data_entry", 4),
					Confidence: 0.8,
					Indicator:  "Contract terms re-keyed into admin systems by hand",
				},
				{
					Predicate:  painAtLeast("report_compilation", 3),
					Confidence: 0.7,
					Indicator:  "Reporting rebuilt from the same contract data",
				},
			},
			Impacts: map[string]model.ImpactFunc{
				MetricHoursWasted: hoursFromPain("data_entry", 2.5),
			},
			SeverityBonuses: []model.SeverityBonus{
				{Metric: MetricHoursWasted, Threshold: hoursWastedThreshold, Bonus: severityBonus},
			},
			RootCauses: []string{
				"Executed contracts arrive as PDFs with no structured handoff",
				"The same terms are keyed separately for billing, reporting and filing",
			},
			Solution: "Extract contract terms once at execution and propagate them to every downstream system automatically.",
		},
	}
}
