package archetype

import (
	"context"
	"testing"

	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Match(t *testing.T) {
	ctx := context.Background()

	catalog := map[model.BusinessUnit][]model.ArchetypeDefinition{
		model.UnitSourcing: {
			{
				ID:          "volume",
				DisplayName: "Volume",
				Signals: map[string]model.Signal{
					"active_roles": model.ValueSetSignal("10-20", "20+"),
					"pain":         model.RangeSignal(3, 5),
					"obstacle":     model.ContainsSignal("volume"),
					"tools":        model.ValueSetSignal("ats"),
				},
			},
			{
				ID:          "boutique",
				DisplayName: "Boutique",
				Signals: map[string]model.Signal{
					"active_roles": model.ValueSetSignal("1-5"),
					"pain":         model.RangeSignal(1, 2),
				},
			},
		},
	}
	matcher := NewMatcher(catalog)

	t.Run("strong match when two of three present signals hit", func(t *testing.T) {
		// Four declared signals, three answer keys present, two matching.
		answers := model.AnswerSet{
			"active_roles": model.TextAnswer("20+"),
			"pain":         model.NumberAnswer(4),
			"obstacle":     model.TextAnswer("candidate relationships"),
			// "tools" absent: excluded from numerator and denominator
		}

		result := matcher.Match(ctx, model.UnitSourcing, answers)
		require.NotNil(t, result.Primary)
		assert.Equal(t, "volume", result.Primary.Definition.ID)
		assert.InDelta(t, 2.0/3.0, result.Primary.MatchScore, 1e-9)
		assert.Equal(t, 67, result.Primary.MatchPercentage)
		assert.True(t, result.Strong, "2/3 ≥ 0.6 is a strong match")
	})

	t.Run("weak match still returns top candidate", func(t *testing.T) {
		answers := model.AnswerSet{
			"active_roles": model.TextAnswer("5-10"),
			"pain":         model.NumberAnswer(4),
			"obstacle":     model.TextAnswer("nothing in particular"),
			"tools":        model.TextAnswer("spreadsheet"),
		}

		result := matcher.Match(ctx, model.UnitSourcing, answers)
		require.NotNil(t, result.Primary)
		assert.False(t, result.Strong)
		assert.Less(t, result.Primary.MatchScore, StrongMatchThreshold)
	})

	t.Run("no answered signals scores zero", func(t *testing.T) {
		answers := model.AnswerSet{"unrelated": model.TextAnswer("x")}

		result := matcher.Match(ctx, model.UnitSourcing, answers)
		require.NotNil(t, result.Primary)
		assert.Zero(t, result.Primary.MatchScore)
		assert.False(t, result.Strong)
	})

	t.Run("alternates ranked after primary", func(t *testing.T) {
		answers := model.AnswerSet{
			"active_roles": model.TextAnswer("20+"),
			"pain":         model.NumberAnswer(4),
			"obstacle":     model.TextAnswer("too much volume"),
			"tools":        model.TextAnswer("ats"),
		}

		result := matcher.Match(ctx, model.UnitSourcing, answers)
		require.NotNil(t, result.Primary)
		assert.Equal(t, "volume", result.Primary.Definition.ID)
		require.Len(t, result.Alternates, 1)
		assert.Equal(t, "boutique", result.Alternates[0].Definition.ID)
		assert.GreaterOrEqual(t, result.Primary.MatchScore, result.Alternates[0].MatchScore)
	})

	t.Run("unit with no archetypes yields empty result", func(t *testing.T) {
		result := matcher.Match(ctx, model.UnitAdmin, model.AnswerSet{"pain": model.NumberAnswer(4)})
		assert.Nil(t, result.Primary)
		assert.Empty(t, result.Alternates)
		assert.False(t, result.Strong)
	})
}

func TestSignalMatches(t *testing.T) {
	tests := []struct {
		name   string
		signal model.Signal
		answer model.Answer
		want   bool
	}{
		{
			name:   "value set hit",
			signal: model.ValueSetSignal("a", "b"),
			answer: model.TextAnswer("b"),
			want:   true,
		},
		{
			name:   "value set miss",
			signal: model.ValueSetSignal("a", "b"),
			answer: model.TextAnswer("c"),
			want:   false,
		},
		{
			name:   "value set matches any selected value",
			signal: model.ValueSetSignal("b"),
			answer: model.MultiAnswer("a", "b", "c"),
			want:   true,
		},
		{
			name:   "range inclusive lower bound",
			signal: model.RangeSignal(3, 5),
			answer: model.NumberAnswer(3),
			want:   true,
		},
		{
			name:   "range inclusive upper bound",
			signal: model.RangeSignal(3, 5),
			answer: model.NumberAnswer(5),
			want:   true,
		},
		{
			name:   "range miss below",
			signal: model.RangeSignal(3, 5),
			answer: model.NumberAnswer(2),
			want:   false,
		},
		{
			name:   "range parses numeric text",
			signal: model.RangeSignal(3, 5),
			answer: model.TextAnswer("4"),
			want:   true,
		},
		{
			name:   "range rejects non-numeric text",
			signal: model.RangeSignal(3, 5),
			answer: model.TextAnswer("often"),
			want:   false,
		},
		{
			name:   "contains is case-insensitive",
			signal: model.ContainsSignal("VOLUME"),
			answer: model.TextAnswer("too much volume to handle"),
			want:   true,
		},
		{
			name:   "contains miss",
			signal: model.ContainsSignal("volume"),
			answer: model.TextAnswer("relationship building"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signalMatches(tt.signal, tt.answer))
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	for _, unit := range model.AllUnits() {
		definitions, ok := catalog[unit]
		assert.True(t, ok, "unit %s has no archetypes", unit)
		assert.NotEmpty(t, definitions)

		for i := range definitions {
			require.NoError(t, definitions[i].Validate(), "unit %s archetype %s", unit, definitions[i].ID)
			assert.NotEmpty(t, definitions[i].Signals, "archetype %s declares no signals", definitions[i].ID)
		}
	}
}
