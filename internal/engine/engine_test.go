package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// ontarioConfig mirrors the shape of a production configuration: weighted
// categories with caps, one bonus rule that can overflow its cap, and a
// top-level disqualifier list.
func ontarioConfig() *types.ScoringConfig {
	return &types.ScoringConfig{
		Version: "ontario-resume-v1.3",
		Categories: []types.Category{
			{
				Key:       "work_experience",
				MaxPoints: 25,
				Rules: []types.Rule{
					{
						ID:     "police_related_3y",
						Kind:   types.RuleAdd,
						Points: 18,
						Expression: types.Expression{
							Variable: "work.policeRelatedYears",
							Operator: types.OpGreaterEqual,
							Value:    3,
						},
					},
					{
						ID:     "supervisory_role",
						Kind:   types.RuleAdd,
						Points: 10,
						Expression: types.Expression{
							Variable: "work.supervisory",
							Operator: types.OpEqual,
							Value:    true,
						},
					},
					{
						ID:   "career_changer",
						Kind: types.RuleAnchor,
						Expression: types.Expression{
							Variable: "work.totalYears",
							Operator: types.OpGreaterEqual,
							Value:    8,
						},
					},
				},
			},
			{
				Key:       "fitness",
				MaxPoints: 15,
				Rules: []types.Rule{
					{
						ID:     "prep_completed",
						Kind:   types.RuleAdd,
						Points: 12,
						Expression: types.Expression{
							Variable: "fitness.prepCompleted",
							Operator: types.OpEqual,
							Value:    true,
						},
					},
					{
						ID:     "shuttle_elite",
						Kind:   types.RuleBonus,
						Points: 8,
						Expression: types.Expression{
							Variable: "fitness.shuttleLevel",
							Operator: types.OpGreaterEqual,
							Value:    10,
						},
					},
				},
			},
		},
		Thresholds: []types.Threshold{
			{Level: "Highly Competitive", MinScore: 80},
			{Level: "Competitive", MinScore: 60},
			{Level: "Developing", MinScore: 40},
			{Level: "Not Yet Competitive", MinScore: 0},
		},
		Disqualifiers: []types.Rule{
			{
				ID:   "open_criminal_charge",
				Kind: types.RuleDisqualifier,
				Expression: types.Expression{
					Variable: "background.openCharge",
					Operator: types.OpEqual,
					Value:    true,
				},
			},
			{
				ID:   "licence_suspended",
				Kind: types.RuleDisqualifier,
				Expression: types.Expression{
					Variable: "background.licenceSuspended",
					Operator: types.OpEqual,
					Value:    true,
				},
			},
		},
	}
}

func TestEvaluate_PartialMatch(t *testing.T) {
	profile := map[string]interface{}{
		"work": map[string]interface{}{
			"policeRelatedYears": 3,
		},
	}

	result, err := Evaluate(profile, ontarioConfig())
	require.NoError(t, err)

	require.Len(t, result.PerCategory, 2)
	work := result.PerCategory[0]
	assert.Equal(t, "work_experience", work.Category)
	assert.Equal(t, 18, work.RawPoints)
	assert.Equal(t, 18, work.CappedPoints)
	assert.Equal(t, 25, work.MaxPoints)
	assert.Equal(t, []string{"police_related_3y"}, work.MatchedRuleIDs)

	// 18 of 40 total points rounds to 45%.
	assert.Equal(t, 45, result.OverallPercent)
	assert.Equal(t, "Developing", result.Label)
	assert.False(t, result.Disqualified)
	assert.Equal(t, "ontario-resume-v1.3", result.ConfigVersion)
}

func TestEvaluate_CategoryCapping(t *testing.T) {
	profile := map[string]interface{}{
		"work": map[string]interface{}{
			"policeRelatedYears": 5,
			"supervisory":        true,
			"totalYears":         12,
		},
		"fitness": map[string]interface{}{
			"prepCompleted": true,
			"shuttleLevel":  11,
		},
	}

	result, err := Evaluate(profile, ontarioConfig())
	require.NoError(t, err)

	work := result.PerCategory[0]
	assert.Equal(t, 28, work.RawPoints, "raw points keep the overflow")
	assert.Equal(t, 25, work.CappedPoints, "capped points respect the category maximum")
	assert.Equal(t, []string{"police_related_3y", "supervisory_role", "career_changer"}, work.MatchedRuleIDs,
		"anchors record their id without contributing points")

	fitness := result.PerCategory[1]
	assert.Equal(t, 20, fitness.RawPoints, "bonus overflow shows in raw points")
	assert.Equal(t, 15, fitness.CappedPoints)

	// Both categories saturated: 40/40.
	assert.Equal(t, 100, result.OverallPercent)
	assert.Equal(t, "Highly Competitive", result.Label)
}

func TestEvaluate_NoMatches(t *testing.T) {
	result, err := Evaluate(map[string]interface{}{}, ontarioConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, result.OverallPercent)
	assert.Equal(t, "Not Yet Competitive", result.Label)
	for _, cat := range result.PerCategory {
		assert.Equal(t, 0, cat.CappedPoints)
		assert.Empty(t, cat.MatchedRuleIDs)
	}
}

func TestEvaluate_Disqualifier(t *testing.T) {
	profile := map[string]interface{}{
		"work": map[string]interface{}{
			"policeRelatedYears": 5,
			"supervisory":        true,
		},
		"fitness": map[string]interface{}{
			"prepCompleted": true,
		},
		"background": map[string]interface{}{
			"openCharge": true,
		},
	}

	result, err := Evaluate(profile, ontarioConfig())
	require.NoError(t, err)

	assert.True(t, result.Disqualified)
	assert.Equal(t, "open_criminal_charge", result.DisqualifierID)
	// Numeric scoring still runs; only the label is forced to the floor.
	assert.Greater(t, result.OverallPercent, 0)
	assert.Equal(t, "Not Yet Competitive", result.Label)
}

func TestEvaluate_FirstDisqualifierWins(t *testing.T) {
	profile := map[string]interface{}{
		"background": map[string]interface{}{
			"openCharge":       true,
			"licenceSuspended": true,
		},
	}

	result, err := Evaluate(profile, ontarioConfig())
	require.NoError(t, err)

	assert.True(t, result.Disqualified)
	assert.Equal(t, "open_criminal_charge", result.DisqualifierID)
}

func TestEvaluate_Deterministic(t *testing.T) {
	profile := map[string]interface{}{
		"work": map[string]interface{}{"policeRelatedYears": 3},
	}
	cfg := ontarioConfig()

	first, err := Evaluate(profile, cfg)
	require.NoError(t, err)
	second, err := Evaluate(profile, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_ZeroTotalMax(t *testing.T) {
	cfg := &types.ScoringConfig{
		Version: "degenerate-v1",
		Categories: []types.Category{
			{Key: "empty", MaxPoints: 0, Rules: []types.Rule{}},
		},
		Thresholds: []types.Threshold{
			{Level: "Competitive", MinScore: 60},
			{Level: "Not Yet Competitive", MinScore: 0},
		},
	}

	result, err := Evaluate(map[string]interface{}{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, result.OverallPercent)
	assert.Equal(t, "Not Yet Competitive", result.Label)
}

func TestEvaluate_InvalidConfig(t *testing.T) {
	_, err := Evaluate(map[string]interface{}{}, &types.ScoringConfig{Version: "v1"})
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLabelFor_ThresholdSelection(t *testing.T) {
	thresholds := []types.Threshold{
		{Level: "Not Yet Competitive", MinScore: 0},
		{Level: "Highly Competitive", MinScore: 80},
		{Level: "Developing", MinScore: 40},
		{Level: "Competitive", MinScore: 60},
	}

	tests := []struct {
		percent float64
		want    string
	}{
		{100, "Highly Competitive"},
		{80, "Highly Competitive"},
		{79, "Competitive"},
		{60, "Competitive"},
		{59, "Developing"},
		{40, "Developing"},
		{39, "Not Yet Competitive"},
		{0, "Not Yet Competitive"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, labelFor(thresholds, tt.percent), "percent %v", tt.percent)
	}
}
