package percentile

import (
	"context"
	"testing"

	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/stretchr/testify/assert"
)

func testTables() map[model.BusinessUnit]VolumeLookup {
	return map[model.BusinessUnit]VolumeLookup{
		model.UnitSourcing: {
			AnswerKey: "sourcing_active_roles",
			Percentiles: map[string]float64{
				"1-5": 30,
				"20+": 95,
			},
		},
	}
}

func TestEstimator_Estimate(t *testing.T) {
	ctx := context.Background()
	estimator := NewEstimator(testTables())

	t.Run("volume lookup averages with the base prior", func(t *testing.T) {
		answers := model.AnswerSet{
			"sourcing_active_roles": model.TextAnswer("20+"),
			"aiexperience":          model.TextAnswer("none"),
		}

		estimate := estimator.Estimate(ctx, model.UnitSourcing, answers, nil)
		// (50 + 95) / 2 = 72.5, AI bonus 0, rounds to 73.
		assert.Equal(t, 73, estimate.Percentile)
		assert.Equal(t, "above_average", estimate.Standing.ID,
			"73 misses the high_performer threshold of 75")
	})

	t.Run("no answers falls back to the prior", func(t *testing.T) {
		estimate := estimator.Estimate(ctx, model.UnitSourcing, model.AnswerSet{}, nil)
		assert.Equal(t, 50, estimate.Percentile)
		assert.Equal(t, "above_average", estimate.Standing.ID)
	})

	t.Run("unknown volume band leaves the prior untouched", func(t *testing.T) {
		answers := model.AnswerSet{"sourcing_active_roles": model.TextAnswer("100+")}
		estimate := estimator.Estimate(ctx, model.UnitSourcing, answers, nil)
		assert.Equal(t, 50, estimate.Percentile)
	})

	t.Run("unit without a lookup table degrades gracefully", func(t *testing.T) {
		answers := model.AnswerSet{"admin_weekly_requests": model.TextAnswer("100+")}
		estimate := estimator.Estimate(ctx, model.UnitAdmin, answers, nil)
		assert.Equal(t, 50, estimate.Percentile)
	})

	t.Run("ai experience bonus is additive", func(t *testing.T) {
		tests := []struct {
			experience string
			want       int
		}{
			{experience: "none", want: 50},
			{experience: "explored", want: 60},
			{experience: "using", want: 80},
			{experience: "advanced", want: 95}, // 100 clamped to the ceiling
		}
		for _, tt := range tests {
			answers := model.AnswerSet{"aiexperience": model.TextAnswer(tt.experience)}
			estimate := estimator.Estimate(ctx, model.UnitSourcing, answers, nil)
			assert.Equal(t, tt.want, estimate.Percentile, "experience %s", tt.experience)
		}
	})

	t.Run("unrecognized ai experience is ignored", func(t *testing.T) {
		answers := model.AnswerSet{"aiexperience": model.TextAnswer("guru")}
		estimate := estimator.Estimate(ctx, model.UnitSourcing, answers, nil)
		assert.Equal(t, 50, estimate.Percentile)
	})

	t.Run("efficiency bonus averages in", func(t *testing.T) {
		summary := &Summary{ExcellentMetrics: 5, TotalMetrics: 5}
		estimate := estimator.Estimate(ctx, model.UnitSourcing, model.AnswerSet{}, summary)
		// avg(50, 50 + 1.0×20) = 60
		assert.Equal(t, 60, estimate.Percentile)
	})

	t.Run("empty summary adds nothing", func(t *testing.T) {
		summary := &Summary{}
		estimate := estimator.Estimate(ctx, model.UnitSourcing, model.AnswerSet{}, summary)
		assert.Equal(t, 50, estimate.Percentile)
	})

	t.Run("result always within zero and ninety-five", func(t *testing.T) {
		answers := model.AnswerSet{
			"sourcing_active_roles": model.TextAnswer("20+"),
			"aiexperience":          model.TextAnswer("advanced"),
		}
		summary := &Summary{ExcellentMetrics: 5, TotalMetrics: 5}

		estimate := estimator.Estimate(ctx, model.UnitSourcing, answers, summary)
		assert.LessOrEqual(t, estimate.Percentile, 95)
		assert.GreaterOrEqual(t, estimate.Percentile, 0)
	})
}

func TestDefaultVolumeTables(t *testing.T) {
	tables := DefaultVolumeTables()

	for _, unit := range model.AllUnits() {
		lookup, ok := tables[unit]
		assert.True(t, ok, "unit %s has no volume table", unit)
		assert.NotEmpty(t, lookup.AnswerKey)
		assert.NotEmpty(t, lookup.Percentiles)
		for band, p := range lookup.Percentiles {
			assert.GreaterOrEqual(t, p, 0.0, "unit %s band %s", unit, band)
			assert.LessOrEqual(t, p, 100.0, "unit %s band %s", unit, band)
		}
	}
}
