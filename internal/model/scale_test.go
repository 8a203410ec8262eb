package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale_Label(t *testing.T) {
	scale := Scale{
		{Threshold: 90, Value: "A+"},
		{Threshold: 80, Value: "A"},
		{Threshold: 70, Value: "B"},
		{Threshold: 0, Value: "F"},
	}

	tests := []struct {
		name  string
		want  string
		value float64
	}{
		{name: "above highest threshold", value: 99, want: "A+"},
		{name: "exactly on boundary takes higher band", value: 90, want: "A+"},
		{name: "just below boundary", value: 89.999, want: "A"},
		{name: "mid band", value: 75, want: "B"},
		{name: "floor band", value: 0, want: "F"},
		{name: "below every threshold falls to last band", value: -5, want: "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scale.Label(tt.value))
		})
	}
}

func TestClassify_Empty(t *testing.T) {
	var scale Scale
	assert.Equal(t, "", Classify(scale, 50))
}

func TestUrgencyScale(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		level int
	}{
		{name: "critical blocker", level: 5, want: "critical"},
		{name: "painful", level: 4, want: "high"},
		{name: "frustrating", level: 3, want: "medium"},
		{name: "annoying", level: 2, want: "low"},
		{name: "barely noticeable", level: 1, want: "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UrgencyScale.Label(float64(tt.level)))

			info, ok := PainLevelFor(tt.level)
			assert.True(t, ok)
			assert.Equal(t, tt.want, info.UrgencyTier)
		})
	}
}

func TestStandingFor(t *testing.T) {
	tests := []struct {
		name       string
		wantID     string
		percentile int
	}{
		{name: "top performer at boundary", percentile: 90, wantID: "top_performer"},
		{name: "high performer", percentile: 75, wantID: "high_performer"},
		{name: "just below high performer", percentile: 74, wantID: "above_average"},
		{name: "above average", percentile: 50, wantID: "above_average"},
		{name: "average", percentile: 30, wantID: "average"},
		{name: "developing", percentile: 10, wantID: "developing"},
		{name: "zero", percentile: 0, wantID: "developing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standing := StandingFor(tt.percentile)
			assert.Equal(t, tt.wantID, standing.ID)
			assert.NotEmpty(t, standing.Label)
			assert.NotEmpty(t, standing.Message)
		})
	}
}
