package percentile

import "github.com/fernwell/pulsecheck/internal/model"

// DefaultVolumeTables returns the per-unit workload-volume percentile
// lookups. Values are peer percentiles for the reported volume band.
func DefaultVolumeTables() map[model.BusinessUnit]VolumeLookup {
	return map[model.BusinessUnit]VolumeLookup{
		model.UnitSourcing: {
			AnswerKey: "sourcing_active_roles",
			Percentiles: map[string]float64{
				"1-5":   30,
				"5-10":  55,
				"10-20": 80,
				"20+":   95,
			},
		},
		model.UnitScheduling: {
			AnswerKey: "scheduling_weekly_shifts",
			Percentiles: map[string]float64{
				"under_25": 25,
				"25-100":   50,
				"100-500":  80,
				"500+":     95,
			},
		},
		model.UnitCompliance: {
			AnswerKey: "compliance_tracked_records",
			Percentiles: map[string]float64{
				"under_50": 30,
				"50-200":   55,
				"200-1000": 80,
				"1000+":    95,
			},
		},
		model.UnitContracts: {
			AnswerKey: "contracts_monthly_volume",
			Percentiles: map[string]float64{
				"under_5": 25,
				"5-20":    50,
				"20-50":   80,
				"50+":     95,
			},
		},
		model.UnitAdmin: {
			AnswerKey: "admin_weekly_requests",
			Percentiles: map[string]float64{
				"under_20": 30,
				"20-100":   60,
				"100+":     90,
			},
		},
	}
}
