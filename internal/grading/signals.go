package grading

import (
	"regexp"
	"strings"
)

var (
	wordPattern       = regexp.MustCompile(`\S+`)
	numeralPattern    = regexp.MustCompile(`\d`)
	properPairPattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	firstPerson       = regexp.MustCompile(`(?i)\b(i|i'm|i've|i'd|i'll|my|me)\b`)
	bulletPattern     = regexp.MustCompile(`(?m)^\s*[-*•]`)
)

// Phrase groups reused across buckets. Matching is case-insensitive
// substring containment against the lowered answer.
var (
	policingTerms = []string{
		"policing", "police", "community", "safety", "public trust",
		"trust", "partnership", "partner",
	}
	causalTerms = []string{"why", "because", "so that"}
	starTerms   = []string{
		"situation", "task", "action", "result", "outcome",
		"first", "then", "finally", "as a result",
	}
	missionTerms = []string{
		"mission", "values", "service", "respect", "integrity", "community",
	}
	accountabilityTerms = []string{
		"responsibility", "responsible", "accountable", "accountability",
		"i changed", "i improved", "i learned",
	}
)

// countWords counts whitespace-separated tokens.
func countWords(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

// countDistinctSignals counts how many distinct signal phrases appear in the
// lowered text.
func countDistinctSignals(lowered string, signals []string) int {
	hits := 0
	for _, signal := range signals {
		if signal == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(signal)) {
			hits++
		}
	}
	return hits
}

// containsAny reports whether any phrase appears in the lowered text.
func containsAny(lowered string, phrases []string) bool {
	return countDistinctSignals(lowered, phrases) > 0
}

// hasNumeral reports whether the text contains at least one digit.
func hasNumeral(text string) bool {
	return numeralPattern.MatchString(text)
}

// properNounPairs counts two-word capitalized sequences, the proxy for
// concrete proper-noun references (program names, places, people).
func properNounPairs(text string) int {
	return len(properPairPattern.FindAllString(text, -1))
}

// firstPersonCount counts first-person singular pronouns.
func firstPersonCount(text string) int {
	return len(firstPerson.FindAllString(text, -1))
}

// hasStructuralBreaks reports paragraph breaks or bullet markers.
func hasStructuralBreaks(text string) bool {
	return strings.Contains(text, "\n\n") || bulletPattern.MatchString(text)
}
