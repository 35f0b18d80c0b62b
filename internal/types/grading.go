// Package types provides type definitions for structured data used throughout the applicant-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GradingCriteria is the fixed rubric for one interview question category.
// Rubrics ship with the binary and are not editable at runtime.
type GradingCriteria struct {
	QuestionKey       string   `json:"questionKey"`
	SubstanceSignals  []string `json:"substanceSignals"`
	ValuesSignals     []string `json:"valuesSignals"`
	ReflectionSignals []string `json:"reflectionSignals"`
	OwnershipSignals  []string `json:"ownershipSignals"`
	EnrichmentFields  []string `json:"enrichmentFields,omitempty"`
	GuidanceTips      []string `json:"guidanceTips,omitempty"`
}

// DetectedSignals summarizes what the grader found in an answer.
type DetectedSignals struct {
	WordCount     int  `json:"wordCount"`
	SubstanceHits int  `json:"substanceHits"`
	ValueHits     int  `json:"valueHits"`
	BonusApplied  bool `json:"bonusApplied"`
}

// FreeTextResult is the outcome of grading one free-text interview answer.
type FreeTextResult struct {
	Score    int             `json:"score"`
	Label    string          `json:"label"`
	Notes    []string        `json:"notes"`
	Tips     []string        `json:"tips"`
	Detected DetectedSignals `json:"detected"`
}

// LeadershipMember is one entry in an organization's command roster.
// Aliases cover common short forms ("Chief Demkiw", surname only).
type LeadershipMember struct {
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Aliases []string `json:"aliases,omitempty"`
}

// OrgContext is the reference data for one police service, used by the
// grader's enrichment bonus path. Supplied by the content store; the grader
// treats a nil context as "no enrichment available".
type OrgContext struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Jurisdiction string             `json:"jurisdiction"`
	Programs     []string           `json:"programs,omitempty"`
	Units        []string           `json:"units,omitempty"`
	SwornMembers int                `json:"swornMembers,omitempty"`
	Leadership   []LeadershipMember `json:"leadership,omitempty"`
}
