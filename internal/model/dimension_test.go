package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionWeightsSumToOne(t *testing.T) {
	require.NoError(t, ValidateDimensionWeights())

	sum := 0.0
	for _, id := range AllDimensions() {
		w, ok := DimensionWeights[id]
		require.True(t, ok, "dimension %s has no weight", id)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestGradeScale(t *testing.T) {
	tests := []struct {
		want  string
		score float64
	}{
		{want: "A+", score: 95},
		{want: "A+", score: 90},
		{want: "A", score: 85},
		{want: "B", score: 70},
		{want: "C", score: 60},
		{want: "D", score: 50},
		{want: "F", score: 49.9},
		{want: "F", score: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeScale.Label(tt.score), "score %.1f", tt.score)
	}
}

func TestPainLevelMultipliersStrictlyIncrease(t *testing.T) {
	prev := 0.0
	for level := 1; level <= 5; level++ {
		info, ok := PainLevelFor(level)
		require.True(t, ok)
		assert.Greater(t, info.Multiplier, prev, "multiplier must strictly increase with level")
		prev = info.Multiplier
	}

	_, ok := PainLevelFor(0)
	assert.False(t, ok)
	_, ok = PainLevelFor(6)
	assert.False(t, ok)
}

func TestFrequencyMultiplier(t *testing.T) {
	tests := []struct {
		frequency string
		want      float64
	}{
		{frequency: "hourly", want: 40},
		{frequency: "daily", want: 20},
		{frequency: "weekly", want: 5},
		{frequency: "monthly", want: 1},
		{frequency: "quarterly", want: 0.25},
		{frequency: "rarely", want: 0.1},
		{frequency: "sometimes", want: 1},
		{frequency: "", want: 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, FrequencyMultiplier(tt.frequency), 1e-9, "frequency %q", tt.frequency)
	}
}
