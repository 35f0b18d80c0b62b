package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/applicant-scorer/internal/types"
)

func newResult() *types.FreeTextResult {
	return &types.FreeTextResult{Notes: []string{}, Tips: []string{}}
}

func TestEnrichmentBonus_NilOrgContext(t *testing.T) {
	criteria, _ := CriteriaFor("why_this_service")
	bonus := enrichmentBonus("text", "text", criteria, nil, newResult())
	assert.Equal(t, 0, bonus)
}

func TestEnrichmentBonus_IndividualFacts(t *testing.T) {
	criteria, _ := CriteriaFor("why_this_service")
	org := torontoOrg()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"program", "The Neighbourhood Community Officer Program drew me in.", programBonus},
		{"unit", "I hope to one day join the Marine Unit.", unitBonus},
		{"jurisdiction", "Serving toronto would be an honour.", jurisdictionBonus},
		{"sworn count exact", "A service of 5200 sworn members.", swornCountBonus},
		{"sworn count within tolerance", "Roughly 5,000 sworn officers.", swornCountBonus},
		{"leadership", "Chief Myron Demkiw has set a clear direction.", leadershipBonus},
		{"nothing relevant", "I enjoy teamwork and structure.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lowered := strings.ToLower(tt.text)
			got := enrichmentBonus(tt.text, lowered, criteria, org, newResult())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnrichmentBonus_CappedAtTen(t *testing.T) {
	criteria, _ := CriteriaFor("why_this_service")
	org := torontoOrg()

	text := "The Neighbourhood Community Officer Program and the Marine Unit serve Toronto with about 5,200 sworn members under Chief Myron Demkiw."
	bonus := enrichmentBonus(text, strings.ToLower(text), criteria, org, newResult())
	assert.Equal(t, enrichmentCap, bonus)
}

func TestEnrichmentBonus_WrongLeadershipNameEarnsNothing(t *testing.T) {
	criteria, _ := CriteriaFor("why_this_service")
	org := torontoOrg()
	result := newResult()

	text := "Chief Mark Saunders has set a clear direction."
	bonus := enrichmentBonus(text, strings.ToLower(text), criteria, org, result)

	assert.Equal(t, 0, bonus, "a wrong name never subtracts, but earns nothing")
	assert.Contains(t, result.Notes, "Names someone other than current service leadership; double-check the roster.")
}

func TestEnrichmentBonus_RespectsEnrichmentFields(t *testing.T) {
	// why_policing only asks for programs, jurisdiction, and leadership;
	// unit and sworn-count mentions earn nothing under it.
	criteria, _ := CriteriaFor("why_policing")
	org := torontoOrg()

	text := "The Marine Unit has about 5,200 sworn members."
	bonus := enrichmentBonus(text, strings.ToLower(text), criteria, org, newResult())
	assert.Equal(t, 0, bonus)
}

func TestMentionsCount(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		reference int
		want      bool
	}{
		{"exact", "5200 members", 5200, true},
		{"with separator", "5,200 members", 5200, true},
		{"within ten percent", "about 5,000 officers", 5200, true},
		{"outside ten percent", "about 4,000 officers", 5200, false},
		{"approximate marker", "~5200 members", 5200, true},
		{"no number", "several thousand members", 5200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mentionsCount(tt.text, tt.reference))
		})
	}
}
