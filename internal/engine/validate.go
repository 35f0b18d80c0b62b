package engine

import (
	"fmt"

	"github.com/jonathan/applicant-scorer/internal/types"
)

var validOperators = map[types.Operator]bool{
	types.OpEqual:        true,
	types.OpNotEqual:     true,
	types.OpGreater:      true,
	types.OpGreaterEqual: true,
	types.OpLess:         true,
	types.OpLessEqual:    true,
	types.OpIncludes:     true,
}

var validKinds = map[types.RuleKind]bool{
	types.RuleAdd:          true,
	types.RuleAnchor:       true,
	types.RuleBonus:        true,
	types.RuleDisqualifier: true,
}

// ValidateConfig checks a scoring configuration for shape problems before
// evaluation. It returns a *ConfigurationError listing every problem found,
// plus non-fatal warnings (currently: disqualifier-kind rules inside a
// category list, which are inert there and almost certainly an authoring
// mistake).
func ValidateConfig(cfg *types.ScoringConfig) ([]string, error) {
	if cfg == nil {
		return nil, newConfigError("config", "configuration is nil")
	}

	var errs []FieldError
	var warnings []string

	if len(cfg.Categories) == 0 {
		errs = append(errs, FieldError{Field: "categories", Message: "at least one category is required"})
	}
	if len(cfg.Thresholds) == 0 {
		errs = append(errs, FieldError{Field: "thresholds", Message: "at least one threshold is required"})
	}

	seenCategories := make(map[string]bool)
	for i, cat := range cfg.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if cat.Key == "" {
			errs = append(errs, FieldError{Field: field + ".key", Message: "category key is required"})
		} else if seenCategories[cat.Key] {
			errs = append(errs, FieldError{Field: field + ".key", Message: fmt.Sprintf("duplicate category key %q", cat.Key)})
		}
		seenCategories[cat.Key] = true

		if cat.MaxPoints < 0 {
			errs = append(errs, FieldError{Field: field + ".maxPoints", Message: "maxPoints must be non-negative"})
		}
		if cat.Rules == nil {
			errs = append(errs, FieldError{Field: field + ".rules", Message: "rules list is required"})
			continue
		}

		seenRules := make(map[string]bool)
		for j, rule := range cat.Rules {
			ruleField := fmt.Sprintf("%s.rules[%d]", field, j)
			errs = append(errs, validateRule(ruleField, &rule, seenRules)...)
			if rule.Kind == types.RuleDisqualifier {
				warnings = append(warnings, fmt.Sprintf(
					"category %q rule %q is tagged disqualifier but lives in a category list; it will not disqualify (move it to the top-level disqualifiers list)",
					cat.Key, rule.ID))
			}
		}
	}

	seenDisqualifiers := make(map[string]bool)
	for i, rule := range cfg.Disqualifiers {
		field := fmt.Sprintf("disqualifiers[%d]", i)
		errs = append(errs, validateRule(field, &rule, seenDisqualifiers)...)
	}

	for i, th := range cfg.Thresholds {
		if th.Level == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("thresholds[%d].level", i), Message: "level is required"})
		}
	}

	if len(errs) > 0 {
		return warnings, &ConfigurationError{Errors: errs}
	}
	return warnings, nil
}

// validateRule checks one rule's id, kind, and expression tree.
func validateRule(field string, rule *types.Rule, seen map[string]bool) []FieldError {
	var errs []FieldError
	if rule.ID == "" {
		errs = append(errs, FieldError{Field: field + ".id", Message: "rule id is required"})
	} else if seen[rule.ID] {
		errs = append(errs, FieldError{Field: field + ".id", Message: fmt.Sprintf("duplicate rule id %q", rule.ID)})
	}
	seen[rule.ID] = true

	if !validKinds[rule.Kind] {
		errs = append(errs, FieldError{Field: field + ".kind", Message: fmt.Sprintf("unknown rule kind %q", rule.Kind)})
	}
	errs = append(errs, validateExpression(field+".expression", &rule.Expression)...)
	return errs
}

// validateExpression rejects empty expressions, unknown operators, and leaf
// comparisons missing a variable path.
func validateExpression(field string, expr *types.Expression) []FieldError {
	var errs []FieldError

	switch {
	case expr.Not != nil:
		errs = append(errs, validateExpression(field+".not", expr.Not)...)
	case expr.All != nil:
		for i := range expr.All {
			errs = append(errs, validateExpression(fmt.Sprintf("%s.all[%d]", field, i), &expr.All[i])...)
		}
	case expr.Any != nil:
		for i := range expr.Any {
			errs = append(errs, validateExpression(fmt.Sprintf("%s.any[%d]", field, i), &expr.Any[i])...)
		}
	case expr.IsLeaf():
		if expr.Variable == "" {
			errs = append(errs, FieldError{Field: field + ".variable", Message: "variable path is required"})
		}
		if !validOperators[expr.Operator] {
			errs = append(errs, FieldError{Field: field + ".operator", Message: fmt.Sprintf("unknown operator %q", expr.Operator)})
		}
	default:
		errs = append(errs, FieldError{Field: field, Message: "expression has no leaf or composite form"})
	}
	return errs
}
