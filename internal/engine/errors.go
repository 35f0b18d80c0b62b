package engine

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates a scoring configuration that cannot be
// evaluated: missing categories, rules that are not a list, unknown operators,
// and similar shape problems. Evaluation fails fast on these instead of
// silently producing a zero score.
type ConfigurationError struct {
	Errors []FieldError
}

// FieldError is a single configuration problem at a specific location.
type FieldError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid scoring configuration: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	var sb strings.Builder
	sb.WriteString("invalid scoring configuration:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// newConfigError builds a single-field ConfigurationError.
func newConfigError(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Errors: []FieldError{{Field: field, Message: fmt.Sprintf(format, args...)}}}
}
