package model

import (
	"fmt"
	"math"
)

// DimensionID identifies one independently scored impact axis.
type DimensionID string

// The five fixed impact dimensions.
const (
	DimensionTimeSaved    DimensionID = "time_saved"
	DimensionCostSaved    DimensionID = "cost_saved"
	DimensionQuality      DimensionID = "quality_improvement"
	DimensionSatisfaction DimensionID = "satisfaction_impact"
	DimensionRisk         DimensionID = "risk_reduction"
)

// AllDimensions returns the five dimensions in presentation order.
func AllDimensions() []DimensionID {
	return []DimensionID{
		DimensionTimeSaved,
		DimensionCostSaved,
		DimensionQuality,
		DimensionSatisfaction,
		DimensionRisk,
	}
}

// DimensionWeights holds the fixed contribution weight of each dimension.
// The weights sum to exactly 1.0.
var DimensionWeights = map[DimensionID]float64{
	DimensionTimeSaved:    0.40,
	DimensionCostSaved:    0.25,
	DimensionQuality:      0.20,
	DimensionSatisfaction: 0.10,
	DimensionRisk:         0.05,
}

// ValidateDimensionWeights checks the weight table sums to 1.0.
func ValidateDimensionWeights() error {
	sum := 0.0
	for _, w := range DimensionWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("dimension weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// DimensionScore is the scored result for one impact dimension. A dimension
// with no contributing answers stays in the breakdown with HasSignal false
// and a normalized value of 0 so callers can show "no signal yet".
type DimensionScore struct {
	ID           DimensionID
	Unit         string
	ImpactLabel  string
	SubMetrics   map[string]float64
	RawValue     float64
	Normalized   float64
	Weight       float64
	Contribution float64
	HasSignal    bool
}

// GradeScale maps an overall score to a letter grade. Ordered descending;
// a score on a boundary takes the higher grade.
var GradeScale = Scale{
	{Threshold: 90, Value: "A+"},
	{Threshold: 80, Value: "A"},
	{Threshold: 70, Value: "B"},
	{Threshold: 60, Value: "C"},
	{Threshold: 50, Value: "D"},
	{Threshold: 0, Value: "F"},
}

// ImpactScale maps a normalized dimension value to a qualitative label.
var ImpactScale = Scale{
	{Threshold: 70, Value: "Major"},
	{Threshold: 40, Value: "Significant"},
	{Threshold: 15, Value: "Modest"},
	{Threshold: 0, Value: "Minimal"},
}

// OverallScore is the weighted combination of all present dimensions,
// renormalized by the weight actually present so missing dimensions do not
// silently drag the score down.
type OverallScore struct {
	Grade         string
	Dimensions    []DimensionScore
	Score         float64
	WeightPresent float64
}

// TimeSavings carries externally computed basic time-savings figures,
// consumed as-is by the dimension aggregator.
type TimeSavings struct {
	WeeklyHours  float64 `json:"weekly_hours"`
	MonthlyHours float64 `json:"monthly_hours"`
	YearlyHours  float64 `json:"yearly_hours"`
}
