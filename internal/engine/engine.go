// Package engine evaluates applicant profiles against weighted rule configurations.
//
// Evaluation is a pure function of its inputs: no I/O, no shared state, safe
// to call concurrently. Missing profile data degrades to false comparisons so
// that a partial profile produces a low score instead of an error.
package engine

import (
	"math"
	"sort"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// Evaluate scores a profile against a configuration and returns the
// structured result. The configuration is validated first; shape problems
// return a *ConfigurationError and no result.
func Evaluate(profile map[string]interface{}, cfg *types.ScoringConfig) (*types.EvaluationResult, error) {
	if _, err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	result := &types.EvaluationResult{
		PerCategory:   make([]types.CategoryResult, 0, len(cfg.Categories)),
		ConfigVersion: cfg.Version,
	}

	// Global disqualifiers run first, in declaration order; the first match
	// wins and later disqualifiers are not recorded.
	for i := range cfg.Disqualifiers {
		rule := &cfg.Disqualifiers[i]
		if evalExpr(profile, &rule.Expression) {
			result.Disqualified = true
			result.DisqualifierID = rule.ID
			break
		}
	}

	sumCapped := 0
	sumMax := 0
	for _, cat := range cfg.Categories {
		catResult := scoreCategory(profile, &cat)
		sumCapped += catResult.CappedPoints
		sumMax += catResult.MaxPoints
		result.PerCategory = append(result.PerCategory, catResult)
	}

	if sumMax > 0 {
		pct := math.Round(100 * float64(sumCapped) / float64(sumMax))
		result.OverallPercent = clampPercent(int(pct))
	}

	result.Label = labelFor(cfg.Thresholds, float64(result.OverallPercent))
	if result.Disqualified {
		result.Label = lowestTier(cfg.Thresholds)
	}
	return result, nil
}

// scoreCategory accumulates points for one category in declared rule order.
// Raw points may exceed the cap (bonus rules); capped points never do.
// Disqualifier-kind rules inside a category list are inert here.
func scoreCategory(profile map[string]interface{}, cat *types.Category) types.CategoryResult {
	catResult := types.CategoryResult{
		Category:       cat.Key,
		MaxPoints:      cat.MaxPoints,
		MatchedRuleIDs: []string{},
	}

	for i := range cat.Rules {
		rule := &cat.Rules[i]
		if !evalExpr(profile, &rule.Expression) {
			continue
		}
		switch rule.Kind {
		case types.RuleAdd, types.RuleBonus:
			catResult.RawPoints += rule.Points
			catResult.MatchedRuleIDs = append(catResult.MatchedRuleIDs, rule.ID)
		case types.RuleAnchor:
			catResult.MatchedRuleIDs = append(catResult.MatchedRuleIDs, rule.ID)
		case types.RuleDisqualifier:
			// Inert at category level; only the top-level list disqualifies.
		}
	}

	catResult.CappedPoints = catResult.RawPoints
	if catResult.CappedPoints > cat.MaxPoints {
		catResult.CappedPoints = cat.MaxPoints
	}
	return catResult
}

// labelFor picks the highest-minimum threshold the percentage meets.
// Falls back to the lowest tier when nothing matches.
func labelFor(thresholds []types.Threshold, percent float64) string {
	sorted := make([]types.Threshold, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinScore > sorted[j].MinScore
	})

	for _, th := range sorted {
		if percent >= th.MinScore {
			return th.Level
		}
	}
	return lowestTier(thresholds)
}

// lowestTier returns the level with the smallest minimum score.
func lowestTier(thresholds []types.Threshold) string {
	if len(thresholds) == 0 {
		return ""
	}
	lowest := thresholds[0]
	for _, th := range thresholds[1:] {
		if th.MinScore < lowest.MinScore {
			lowest = th
		}
	}
	return lowest.Level
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
