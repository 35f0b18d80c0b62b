// Package types provides type definitions for structured data used throughout the applicant-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// EvaluateRequest is the body of POST /evaluate. Either Config or ConfigKey
// identifies the scoring configuration; when both are empty the server falls
// back to its default key.
type EvaluateRequest struct {
	Profile   map[string]interface{} `json:"profile" validate:"required"`
	Config    *ScoringConfig         `json:"config,omitempty"`
	ConfigKey string                 `json:"configKey,omitempty"`
}

// BatchEvaluateRequest is the body of POST /evaluate/batch.
type BatchEvaluateRequest struct {
	Profiles  []map[string]interface{} `json:"profiles" validate:"required,min=1,max=100"`
	Config    *ScoringConfig           `json:"config,omitempty"`
	ConfigKey string                   `json:"configKey,omitempty"`
}

// GradeRequest is the body of POST /grade. OrgID selects the organization
// context used for enrichment bonuses; empty means no enrichment.
type GradeRequest struct {
	QuestionKey string `json:"questionKey" validate:"required"`
	Answer      string `json:"answer"`
	OrgID       string `json:"orgId,omitempty"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchEvaluateRequest using the validator.
func (r *BatchEvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GradeRequest using the validator.
func (r *GradeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
