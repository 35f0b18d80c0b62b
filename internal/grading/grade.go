// Package grading scores free-text interview answers against fixed rubrics.
//
// Grading, like rule evaluation, is pure: the same answer, rubric, and
// organization context always produce the same result, and concurrent calls
// need no coordination.
package grading

import (
	"fmt"
	"strings"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// Bucket caps. The five buckets sum to 100; the enrichment bonus sits on top
// and the final score clamps back into [0,100].
const (
	relevanceCap  = 35
	insightCap    = 20
	structureCap  = 20
	valuesCap     = 15
	ownershipCap  = 10
	enrichmentCap = 10
)

// Label bands for free-text scores.
const (
	LabelCompetitive = "Competitive"
	LabelEffective   = "Effective"
	LabelDeveloping  = "Developing"
	LabelNeedsWork   = "Needs Work"
)

// tipThreshold: answers below this score get the rubric's guidance tips.
const tipThreshold = 85

// GradeAnswer scores one free-text answer against a rubric. orgCtx supplies
// optional reference data for the enrichment bonus; nil means no enrichment
// is attempted (never a penalty). An empty answer is a valid, minimum-scoring
// input, not an error.
func GradeAnswer(text string, criteria *types.GradingCriteria, orgCtx *types.OrgContext) *types.FreeTextResult {
	result := &types.FreeTextResult{
		Notes: []string{},
		Tips:  []string{},
	}
	if criteria != nil {
		defer func() {
			if result.Score < tipThreshold {
				result.Tips = append(result.Tips, criteria.GuidanceTips...)
			}
		}()
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || criteria == nil {
		result.Label = LabelNeedsWork
		result.Notes = append(result.Notes, "No answer provided.")
		return result
	}

	lowered := strings.ToLower(trimmed)
	result.Detected.WordCount = countWords(trimmed)

	relevance := scoreRelevance(trimmed, lowered, criteria, result)
	insight := scoreInsight(lowered, criteria)
	structure := scoreStructure(trimmed, result.Detected.WordCount)
	values := scoreValues(lowered, criteria, result)
	ownership := scoreOwnership(trimmed, lowered)

	bonus := enrichmentBonus(trimmed, lowered, criteria, orgCtx, result)
	result.Detected.BonusApplied = bonus > 0

	score := relevance + insight + structure + values + ownership + bonus
	if score > 100 {
		score = 100
	}
	result.Score = score
	result.Label = labelForScore(score)
	return result
}

// scoreRelevance: baseline for answering at all, substance-signal hits,
// domain vocabulary, numerals, and concrete proper-noun references. Cap 35.
func scoreRelevance(text, lowered string, criteria *types.GradingCriteria, result *types.FreeTextResult) int {
	score := 10 // non-empty baseline

	hits := countDistinctSignals(lowered, criteria.SubstanceSignals)
	result.Detected.SubstanceHits = hits
	substance := hits * 3
	if substance > 15 {
		substance = 15
	}
	score += substance

	if containsAny(lowered, policingTerms) {
		score += 5
	}
	if hasNumeral(text) {
		score += 2
	}
	if properNounPairs(text) >= 2 {
		score += 3
	}

	if hits == 0 {
		result.Notes = append(result.Notes, "Answer stays general; name specific experiences or examples.")
	}
	return capAt(score, relevanceCap)
}

// scoreInsight: reflection-signal hits plus causal language. Cap 20.
func scoreInsight(lowered string, criteria *types.GradingCriteria) int {
	score := countDistinctSignals(lowered, criteria.ReflectionSignals) * 4
	if score > 12 {
		score = 12
	}
	if containsAny(lowered, causalTerms) {
		score += 8
	}
	return capAt(score, insightCap)
}

// scoreStructure: length band, narrative markers, visual structure. Cap 20.
func scoreStructure(text string, wordCount int) int {
	score := 5
	if wordCount >= 60 && wordCount <= 250 {
		score = 8
	}
	lowered := strings.ToLower(text)
	if containsAny(lowered, starTerms) {
		score += 6
	}
	if hasStructuralBreaks(text) {
		score += 6
	}
	return capAt(score, structureCap)
}

// scoreValues: values-signal hits plus mission vocabulary. Cap 15.
func scoreValues(lowered string, criteria *types.GradingCriteria, result *types.FreeTextResult) int {
	hits := countDistinctSignals(lowered, criteria.ValuesSignals)
	result.Detected.ValueHits = hits
	score := hits * 3
	if score > 10 {
		score = 10
	}
	if containsAny(lowered, missionTerms) {
		score += 5
	}
	return capAt(score, valuesCap)
}

// scoreOwnership: first-person voice and accountability language. Cap 10.
func scoreOwnership(text, lowered string) int {
	score := 0
	if firstPersonCount(text) >= 3 {
		score += 6
	}
	if containsAny(lowered, accountabilityTerms) {
		score += 4
	}
	return capAt(score, ownershipCap)
}

// labelForScore maps a clamped score to its band.
func labelForScore(score int) string {
	switch {
	case score >= 85:
		return LabelCompetitive
	case score >= 70:
		return LabelEffective
	case score >= 50:
		return LabelDeveloping
	default:
		return LabelNeedsWork
	}
}

func capAt(score, limit int) int {
	if score > limit {
		return limit
	}
	return score
}

// GradeByQuestionKey looks up the built-in rubric for a question key and
// grades the answer with it. Unknown keys return an error naming the key.
func GradeByQuestionKey(questionKey, answer string, orgCtx *types.OrgContext) (*types.FreeTextResult, error) {
	criteria, ok := CriteriaFor(questionKey)
	if !ok {
		return nil, fmt.Errorf("unknown question key %q", questionKey)
	}
	return GradeAnswer(answer, criteria, orgCtx), nil
}
