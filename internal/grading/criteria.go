package grading

import "github.com/jonathan/applicant-scorer/internal/types"

// Built-in rubrics for the Local Focus Interview question categories. These
// ship with the binary; the content store only supplies organization context,
// not rubric edits.
var builtinCriteria = map[string]*types.GradingCriteria{
	"why_policing": {
		QuestionKey: "why_policing",
		SubstanceSignals: []string{
			"volunteer", "ride-along", "ride along", "coached", "mentored",
			"de-escalat", "shift work", "victim", "crisis", "security",
			"first aid", "fitness test",
		},
		ValuesSignals: []string{
			"serve", "protect", "give back", "fairness", "dignity", "empathy",
		},
		ReflectionSignals: []string{
			"i realized", "i learned", "looking back", "taught me", "changed how i",
		},
		OwnershipSignals: []string{
			"my decision", "i chose", "i took", "my responsibility",
		},
		EnrichmentFields: []string{"programs", "jurisdiction", "leadership"},
		GuidanceTips: []string{
			"Anchor your motivation in a concrete experience, not a general desire to help.",
			"Name the service you are applying to and something specific it does.",
			"Explain why policing rather than another helping profession.",
		},
	},
	"why_this_service": {
		QuestionKey: "why_this_service",
		SubstanceSignals: []string{
			"neighbourhood", "neighborhood", "division", "beat", "patrol zone",
			"community station", "attended", "spoke with", "recruiter",
		},
		ValuesSignals: []string{
			"diversity", "inclusion", "transparency", "accountability", "reconciliation",
		},
		ReflectionSignals: []string{
			"i researched", "i found", "stood out to me", "resonated",
		},
		OwnershipSignals: []string{
			"i reached out", "i attended", "i visited",
		},
		EnrichmentFields: []string{"programs", "units", "jurisdiction", "swornMembers", "leadership"},
		GuidanceTips: []string{
			"Show you know this service: name a program, unit, or initiative and why it matters to you.",
			"Mention the jurisdiction you would serve and what its communities need.",
			"If you cite facts or figures about the service, make sure they are current.",
		},
	},
	"handling_conflict": {
		QuestionKey: "handling_conflict",
		SubstanceSignals: []string{
			"de-escalat", "calm", "listened", "mediat", "apologized",
			"supervisor", "policy", "complaint", "follow up", "followed up",
		},
		ValuesSignals: []string{
			"respect", "fair", "impartial", "professional",
		},
		ReflectionSignals: []string{
			"in hindsight", "i would", "i learned", "next time", "differently",
		},
		OwnershipSignals: []string{
			"my mistake", "i owned", "i apologized", "i took responsibility",
		},
		GuidanceTips: []string{
			"Walk through one real conflict using situation, action, and result.",
			"Show what you personally did, not what the team did.",
			"End with what the experience changed about how you operate.",
		},
	},
	"community_knowledge": {
		QuestionKey: "community_knowledge",
		SubstanceSignals: []string{
			"population", "demographic", "newcomer", "youth", "seniors",
			"transit", "housing", "mental health", "addiction", "downtown",
		},
		ValuesSignals: []string{
			"partnership", "trust", "engagement", "outreach",
		},
		ReflectionSignals: []string{
			"i noticed", "i observed", "this matters because",
		},
		OwnershipSignals: []string{
			"i volunteer", "i live", "i work with",
		},
		EnrichmentFields: []string{"programs", "units", "jurisdiction", "swornMembers"},
		GuidanceTips: []string{
			"Cite something concrete about the community: a neighbourhood, a demographic shift, a local issue.",
			"Connect the issue to what a front-line officer can actually do about it.",
		},
	},
}

// CriteriaFor returns the built-in rubric for a question key.
func CriteriaFor(questionKey string) (*types.GradingCriteria, bool) {
	criteria, ok := builtinCriteria[questionKey]
	return criteria, ok
}

// QuestionKeys lists the supported question categories in no particular order.
func QuestionKeys() []string {
	keys := make([]string, 0, len(builtinCriteria))
	for k := range builtinCriteria {
		keys = append(keys, k)
	}
	return keys
}
