package grading

import (
	"strconv"
	"strings"

	"github.com/jonathan/applicant-scorer/internal/match"
	"github.com/jonathan/applicant-scorer/internal/types"
)

// Per-fact enrichment bonuses. The path is strictly additive: absent or wrong
// enrichment content never subtracts from the bucket score, and the total is
// capped at enrichmentCap.
const (
	programBonus      = 3
	unitBonus         = 2
	jurisdictionBonus = 2
	swornCountBonus   = 3
	leadershipBonus   = 6
)

// enrichmentBonus awards points for correctly referencing supplied
// organization facts: named programs or units, the jurisdiction, the sworn
// member count, and the leadership roster (fuzzy-matched).
func enrichmentBonus(text, lowered string, criteria *types.GradingCriteria, orgCtx *types.OrgContext, result *types.FreeTextResult) int {
	if orgCtx == nil {
		return 0
	}

	bonus := 0
	wants := func(field string) bool {
		if len(criteria.EnrichmentFields) == 0 {
			return true
		}
		for _, f := range criteria.EnrichmentFields {
			if f == field {
				return true
			}
		}
		return false
	}

	if wants("programs") && mentionsAnyOf(lowered, orgCtx.Programs) {
		bonus += programBonus
		result.Notes = append(result.Notes, "References a "+orgCtx.Name+" program by name.")
	}
	if wants("units") && mentionsAnyOf(lowered, orgCtx.Units) {
		bonus += unitBonus
	}
	if wants("jurisdiction") && orgCtx.Jurisdiction != "" &&
		strings.Contains(lowered, strings.ToLower(orgCtx.Jurisdiction)) {
		bonus += jurisdictionBonus
	}
	if wants("swornMembers") && orgCtx.SwornMembers > 0 && mentionsCount(text, orgCtx.SwornMembers) {
		bonus += swornCountBonus
	}
	if wants("leadership") && len(orgCtx.Leadership) > 0 {
		switch match.ClassifyLeadershipMention(text, orgCtx.Leadership) {
		case match.MentionCorrect:
			bonus += leadershipBonus
			result.Notes = append(result.Notes, "Correctly names current service leadership.")
		case match.MentionIncorrect:
			// Additive-only path: a wrong name earns nothing but is worth
			// surfacing to the applicant.
			result.Notes = append(result.Notes, "Names someone other than current service leadership; double-check the roster.")
		case match.MentionAbsent:
		}
	}

	if bonus > enrichmentCap {
		bonus = enrichmentCap
	}
	return bonus
}

// mentionsAnyOf reports whether the lowered text contains any of the names.
func mentionsAnyOf(lowered string, names []string) bool {
	for _, name := range names {
		if name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

// mentionsCount reports whether the text cites a number within 10% of the
// reference count; applicants quoting "about 5,000 sworn officers" against a
// roster of 5,200 still get credit.
func mentionsCount(text string, reference int) bool {
	cleaned := strings.NewReplacer(",", "", "~", "").Replace(text)
	tolerance := float64(reference) * 0.10
	for _, field := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		diff := float64(n - reference)
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			return true
		}
	}
	return false
}
