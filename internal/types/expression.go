// Package types provides type definitions for structured data used throughout the applicant-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Operator identifies a leaf comparison in a rule expression.
type Operator string

// Supported leaf operators.
const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpIncludes     Operator = "includes"
)

// Expression is a recursive boolean predicate over an applicant profile.
// Exactly one form should be populated: a leaf comparison (Variable/Operator/Value)
// or one of the composite forms All, Any, Not. Configuration documents use the
// same shape, so the JSON tags mirror the content-store format.
//
// A non-nil empty All is an empty conjunction (true); a non-nil empty Any is an
// empty disjunction (false). A nil slice means the form is absent.
type Expression struct {
	// Leaf form: Variable is a dotted path into the profile.
	Variable string      `json:"variable,omitempty"`
	Operator Operator    `json:"operator,omitempty"`
	Value    interface{} `json:"value,omitempty"`

	// Composite forms.
	All []Expression `json:"all,omitempty"`
	Any []Expression `json:"any,omitempty"`
	Not *Expression  `json:"not,omitempty"`
}

// IsLeaf reports whether the expression is a leaf comparison.
func (e *Expression) IsLeaf() bool {
	return e.Variable != "" || e.Operator != ""
}

// IsComposite reports whether any composite form is present.
func (e *Expression) IsComposite() bool {
	return e.All != nil || e.Any != nil || e.Not != nil
}
