// Package types provides type definitions for structured data used throughout the applicant-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RuleKind distinguishes how a fired rule contributes to a result.
type RuleKind string

// Rule kinds.
const (
	// RuleAdd contributes its points to the category total when fired.
	RuleAdd RuleKind = "add"
	// RuleAnchor contributes no points; fired anchors are recorded for
	// qualitative narrative only.
	RuleAnchor RuleKind = "anchor"
	// RuleBonus behaves like add; bonus points may push a category's raw
	// total past its cap.
	RuleBonus RuleKind = "bonus"
	// RuleDisqualifier forces the lowest tier when fired from the top-level
	// disqualifier list. Inside a category's rule list the kind is inert
	// and flagged as a configuration warning.
	RuleDisqualifier RuleKind = "disqualifier"
)

// Rule is a single weighted, conditionally-triggered scoring contribution.
// A rule fires at most once per evaluation.
type Rule struct {
	ID         string     `json:"id"`
	Kind       RuleKind   `json:"kind"`
	Points     int        `json:"points,omitempty"`
	Expression Expression `json:"expression"`
}

// Category is a named, capped group of rules representing one dimension of
// applicant competitiveness (work experience, fitness, education, ...).
type Category struct {
	Key       string `json:"key"`
	MaxPoints int    `json:"maxPoints"`
	Rules     []Rule `json:"rules"`
}

// Threshold maps a minimum overall percentage to a tier label.
type Threshold struct {
	Level    string  `json:"level"`
	MinScore float64 `json:"minScore"`
}

// ScoringConfig is a versioned, immutable scoring configuration supplied by
// the content store. Evaluation never mutates it.
type ScoringConfig struct {
	Version       string      `json:"version"`
	Categories    []Category  `json:"categories"`
	Thresholds    []Threshold `json:"thresholds"`
	Disqualifiers []Rule      `json:"disqualifiers,omitempty"`
}

// CategoryResult is the per-category portion of an evaluation result.
type CategoryResult struct {
	Category       string   `json:"category"`
	RawPoints      int      `json:"rawPoints"`
	CappedPoints   int      `json:"cappedPoints"`
	MaxPoints      int      `json:"maxPoints"`
	MatchedRuleIDs []string `json:"matchedRuleIds"`
}

// EvaluationResult is the structured outcome of evaluating a profile against
// a scoring configuration.
type EvaluationResult struct {
	OverallPercent int              `json:"overallPercent"`
	Label          string           `json:"label"`
	PerCategory    []CategoryResult `json:"perCategory"`
	Disqualified   bool             `json:"disqualified"`
	DisqualifierID string           `json:"disqualifierId,omitempty"`
	ConfigVersion  string           `json:"configVersion,omitempty"`
}
