package assess

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fernwell/pulsecheck/internal/common"
	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnswers() model.AnswerSet {
	return model.AnswerSet{
		"resume_screening_pain":        model.NumberAnswer(5),
		"resume_screening_frequency":   model.TextAnswer("daily"),
		"candidate_outreach_pain":      model.NumberAnswer(4),
		"candidate_outreach_frequency": model.TextAnswer("daily"),
		"interview_coordination_pain":  model.NumberAnswer(3),
		"sourcing_active_roles":        model.TextAnswer("20+"),
		"sourcing_biggest_obstacle":    model.TextAnswer("sheer volume of applicants"),
		"aiexperience":                 model.TextAnswer("explored"),
	}
}

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	runner, err := NewDefaultRunner(model.NewQuestionCatalog(nil), opts...)
	require.NoError(t, err)
	return runner
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	runner := newTestRunner(t)
	savings := &model.TimeSavings{WeeklyHours: 12, MonthlyHours: 52, YearlyHours: 620}

	report, err := runner.Run(ctx, model.UnitSourcing, testAnswers(), savings)
	require.NoError(t, err)

	assert.Equal(t, model.UnitSourcing, report.Unit)
	assert.NotEmpty(t, report.Fingerprint)
	assert.False(t, report.GeneratedAt.IsZero())

	// Every engine contributed.
	assert.NotEmpty(t, report.Pain.Ranked)
	require.NotNil(t, report.Archetypes.Primary)
	assert.Equal(t, "volume_recruiter", report.Archetypes.Primary.Definition.ID)
	assert.NotEmpty(t, report.Patterns.Summary.Headline)
	assert.Len(t, report.Dimensions.Overall.Dimensions, 5)
	assert.GreaterOrEqual(t, report.Percentile.Percentile, 0)
	assert.LessOrEqual(t, report.Percentile.Percentile, 95)
}

func TestRunner_RunRejectsUnknownUnit(t *testing.T) {
	runner := newTestRunner(t)

	_, err := runner.Run(context.Background(), model.BusinessUnit("finance"), testAnswers(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownUnit)
}

func TestRunner_Idempotent(t *testing.T) {
	ctx := context.Background()
	runner := newTestRunner(t)
	savings := &model.TimeSavings{WeeklyHours: 12}

	first, err := runner.Run(ctx, model.UnitSourcing, testAnswers(), savings)
	require.NoError(t, err)
	second, err := runner.Run(ctx, model.UnitSourcing, testAnswers(), savings)
	require.NoError(t, err)

	// Identical inputs produce identical engine output; only the timestamp moves.
	second.GeneratedAt = first.GeneratedAt
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestRunner_EmptyAnswersDegradeGracefully(t *testing.T) {
	ctx := context.Background()
	runner := newTestRunner(t)

	report, err := runner.Run(ctx, model.UnitAdmin, model.AnswerSet{}, nil)
	require.NoError(t, err)

	assert.Empty(t, report.Pain.Ranked)
	assert.Empty(t, report.Patterns.Detected)
	assert.Equal(t, "F", report.Dimensions.Overall.Grade)
	assert.Equal(t, 50, report.Percentile.Percentile)
}

func TestRunner_CancelledContext(t *testing.T) {
	runner := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, model.UnitSourcing, testAnswers(), nil)
	assert.Error(t, err)
}

func TestRunner_CacheHit(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(4)
	runner := newTestRunner(t, WithCache(cache))

	first, err := runner.Run(ctx, model.UnitSourcing, testAnswers(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := runner.Run(ctx, model.UnitSourcing, testAnswers(), nil)
	require.NoError(t, err)
	assert.Same(t, first, second, "identical inputs must be served from cache")

	// A different unit misses the cache.
	third, err := runner.Run(ctx, model.UnitAdmin, testAnswers(), nil)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, cache.Len())
}

func TestFingerprint(t *testing.T) {
	answers := testAnswers()
	savings := &model.TimeSavings{WeeklyHours: 12}

	assert.Equal(t,
		fingerprint(model.UnitSourcing, answers, savings),
		fingerprint(model.UnitSourcing, answers, savings))

	assert.NotEqual(t,
		fingerprint(model.UnitSourcing, answers, savings),
		fingerprint(model.UnitAdmin, answers, savings))

	assert.NotEqual(t,
		fingerprint(model.UnitSourcing, answers, savings),
		fingerprint(model.UnitSourcing, answers, nil))
}
