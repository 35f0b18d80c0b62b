package match

import (
	"regexp"
	"strings"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// MentionStatus classifies whether an answer mentioned a target person.
type MentionStatus string

// Mention classifications.
const (
	// MentionCorrect: the answer names the target (exactly or within the
	// fuzzy threshold).
	MentionCorrect MentionStatus = "correct"
	// MentionIncorrect: the answer asserts some other proper name that does
	// not match any target alias.
	MentionIncorrect MentionStatus = "incorrect"
	// MentionAbsent: the answer does not name anyone.
	MentionAbsent MentionStatus = "not_mentioned"
)

// similarityThreshold is the minimum Jaro-Winkler score that counts as a
// fuzzy name match.
const similarityThreshold = 0.90

// honorifics are stripped during normalization; applicants routinely write
// "Chief Smith" or "Deputy Chief M. Smith".
var honorifics = map[string]bool{
	"chief":          true,
	"deputy":         true,
	"acting":         true,
	"interim":        true,
	"superintendent": true,
	"inspector":      true,
	"staff":          true,
	"sergeant":       true,
	"constable":      true,
	"officer":        true,
	"commissioner":   true,
	"mr":             true,
	"mrs":            true,
	"ms":             true,
	"dr":             true,
}

var nonAlpha = regexp.MustCompile(`[^a-z\s]+`)

// properNamePattern finds two-word capitalized sequences ("Myron Demkiw"),
// the heuristic for "the answer asserts a specific person".
var properNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)

// NormalizeName lowercases, strips honorific tokens and non-alphabetic
// characters, and collapses whitespace. Both answer text and target names go
// through the same normalization before comparison.
func NormalizeName(s string) string {
	lowered := strings.ToLower(s)
	lowered = nonAlpha.ReplaceAllString(lowered, " ")

	fields := strings.Fields(lowered)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if honorifics[f] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// targetAliases collects the normalized name, surname, and declared aliases
// for one leadership member. Empty strings are dropped.
func targetAliases(member *types.LeadershipMember) []string {
	var aliases []string
	add := func(s string) {
		normalized := NormalizeName(s)
		if normalized != "" {
			aliases = append(aliases, normalized)
		}
	}

	add(member.Name)
	fields := strings.Fields(NormalizeName(member.Name))
	if len(fields) > 1 {
		add(fields[len(fields)-1]) // surname alone
	}
	for _, alias := range member.Aliases {
		add(alias)
	}
	return aliases
}

// windows returns sliding windows of 1 to 3 consecutive tokens.
func windows(tokens []string) []string {
	var out []string
	for size := 1; size <= 3; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+size], " "))
		}
	}
	return out
}

// matchesAnyAlias reports whether normalized answer text mentions any alias:
// substring containment first, then fuzzy comparison of 1-3 token windows.
func matchesAnyAlias(normalizedText string, aliases []string) bool {
	for _, alias := range aliases {
		if strings.Contains(normalizedText, alias) {
			return true
		}
	}

	tokens := strings.Fields(normalizedText)
	for _, window := range windows(tokens) {
		for _, alias := range aliases {
			if JaroWinkler(window, alias) >= similarityThreshold {
				return true
			}
		}
	}
	return false
}

// ClassifyLeadershipMention checks whether an answer correctly names any of
// the given leadership members. A fuzzy match against any member or alias is
// correct; otherwise, if the answer asserts some other proper name that also
// fails to match, the mention is incorrect (the applicant named the wrong
// person); otherwise the answer simply never names anyone.
func ClassifyLeadershipMention(answer string, leadership []types.LeadershipMember) MentionStatus {
	if strings.TrimSpace(answer) == "" || len(leadership) == 0 {
		return MentionAbsent
	}

	var allAliases []string
	for i := range leadership {
		allAliases = append(allAliases, targetAliases(&leadership[i])...)
	}

	normalized := NormalizeName(answer)
	if matchesAnyAlias(normalized, allAliases) {
		return MentionCorrect
	}

	// No match: did the applicant assert a different name?
	for _, candidate := range properNamePattern.FindAllString(answer, -1) {
		normalizedCandidate := NormalizeName(candidate)
		if normalizedCandidate == "" {
			continue
		}
		if !matchesAnyAlias(normalizedCandidate, allAliases) {
			return MentionIncorrect
		}
	}
	return MentionAbsent
}
