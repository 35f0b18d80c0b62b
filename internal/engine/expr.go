package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// resolvePath walks a dotted path into a profile object. A missing segment
// anywhere in the path yields (nil, false) rather than an error; expression
// evaluation must stay total over partial applicant data.
func resolvePath(profile map[string]interface{}, path string) (interface{}, bool) {
	if profile == nil || path == "" {
		return nil, false
	}

	var current interface{} = profile
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// toFloat coerces a value to float64. Numeric strings coerce; everything else
// fails, which makes the enclosing comparison false.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// looseEqual compares two values with deliberate coercion: if both sides
// coerce to numbers, compare numerically (so the number 4 equals the string
// "4"); if both are booleans (or "true"/"false" strings), compare as
// booleans; otherwise compare fmt.Sprint string forms. Configuration
// literals are authored loosely, so strict type equality would silently
// break rules.
func looseEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa == fb
	}

	ba, aBool := toBool(a)
	bb, bBool := toBool(b)
	if aBool && bBool {
		return ba == bb
	}

	return fmt.Sprint(a) == fmt.Sprint(b)
}

// toBool coerces booleans and the strings "true"/"false".
func toBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// includes implements the `includes` operator: array membership by loose
// equality, or substring containment for strings. Any other resolved type
// is false.
func includes(resolved, literal interface{}) bool {
	switch container := resolved.(type) {
	case []interface{}:
		for _, elem := range container {
			if looseEqual(elem, literal) {
				return true
			}
		}
		return false
	case []string:
		for _, elem := range container {
			if looseEqual(elem, literal) {
				return true
			}
		}
		return false
	case string:
		return strings.Contains(container, fmt.Sprint(literal))
	default:
		return false
	}
}

// evalLeaf applies a leaf comparison. Numeric operators require both sides
// to coerce to numbers; coercion failure (including an absent profile value)
// evaluates false.
func evalLeaf(profile map[string]interface{}, expr *types.Expression) bool {
	resolved, found := resolvePath(profile, expr.Variable)

	switch expr.Operator {
	case types.OpEqual:
		if !found {
			return expr.Value == nil
		}
		return looseEqual(resolved, expr.Value)
	case types.OpNotEqual:
		if !found {
			return expr.Value != nil
		}
		return !looseEqual(resolved, expr.Value)
	case types.OpGreater, types.OpGreaterEqual, types.OpLess, types.OpLessEqual:
		left, okL := toFloat(resolved)
		right, okR := toFloat(expr.Value)
		if !found || !okL || !okR {
			return false
		}
		switch expr.Operator {
		case types.OpGreater:
			return left > right
		case types.OpGreaterEqual:
			return left >= right
		case types.OpLess:
			return left < right
		default:
			return left <= right
		}
	case types.OpIncludes:
		if !found {
			return false
		}
		return includes(resolved, expr.Value)
	default:
		// Unknown operators are rejected during configuration validation;
		// reaching here means the caller skipped validation, so fail closed.
		return false
	}
}

// evalExpr evaluates an expression tree against a profile. Composites
// short-circuit; an empty `all` is true and an empty `any` is false.
func evalExpr(profile map[string]interface{}, expr *types.Expression) bool {
	if expr == nil {
		return false
	}

	switch {
	case expr.All != nil:
		for i := range expr.All {
			if !evalExpr(profile, &expr.All[i]) {
				return false
			}
		}
		return true
	case expr.Any != nil:
		for i := range expr.Any {
			if evalExpr(profile, &expr.Any[i]) {
				return true
			}
		}
		return false
	case expr.Not != nil:
		return !evalExpr(profile, expr.Not)
	case expr.IsLeaf():
		return evalLeaf(profile, expr)
	default:
		return false
	}
}
