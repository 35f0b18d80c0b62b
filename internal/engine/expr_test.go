package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/applicant-scorer/internal/types"
)

func sampleProfile() map[string]interface{} {
	return map[string]interface{}{
		"work": map[string]interface{}{
			"policeRelatedYears": 3,
			"currentEmployer":    "City of Hamilton",
			"roles":              []interface{}{"dispatcher", "security guard"},
		},
		"education": map[string]interface{}{
			"level": "bachelor",
		},
		"fitness": map[string]interface{}{
			"prepCompleted": true,
			"shuttleLevel":  "7.5",
		},
	}
}

func TestResolvePath(t *testing.T) {
	profile := sampleProfile()

	tests := []struct {
		name      string
		path      string
		want      interface{}
		wantFound bool
	}{
		{"top level", "education", profile["education"], true},
		{"nested", "education.level", "bachelor", true},
		{"missing leaf", "education.gpa", nil, false},
		{"missing branch", "references.chief", nil, false},
		{"path through non-object", "education.level.deep", nil, false},
		{"empty path", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := resolvePath(profile, tt.path)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolvePath_NilProfile(t *testing.T) {
	_, found := resolvePath(nil, "work.policeRelatedYears")
	assert.False(t, found)
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b interface{}
		want bool
	}{
		{"int vs float", 4, 4.0, true},
		{"number vs numeric string", 4, "4", true},
		{"numeric strings", "7.5", "7.50", true},
		{"different numbers", 4, 5, false},
		{"bool vs bool string", true, "true", true},
		{"bool vs bool string false", false, "FALSE", true},
		{"bool mismatch", true, "false", false},
		{"string forms", "bachelor", "bachelor", true},
		{"string mismatch", "bachelor", "master", false},
		{"both nil", nil, nil, true},
		{"one nil", nil, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looseEqual(tt.a, tt.b))
		})
	}
}

func TestIncludes(t *testing.T) {
	tests := []struct {
		name     string
		resolved interface{}
		literal  interface{}
		want     bool
	}{
		{"array membership", []interface{}{"dispatcher", "guard"}, "dispatcher", true},
		{"array membership loose", []interface{}{1, 2, 3}, "2", true},
		{"array miss", []interface{}{"dispatcher"}, "officer", false},
		{"string slice", []string{"on", "qc"}, "qc", true},
		{"substring", "City of Hamilton", "Hamilton", true},
		{"substring miss", "City of Hamilton", "Toronto", false},
		{"non-container", 42, "4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, includes(tt.resolved, tt.literal))
		})
	}
}

func TestEvalLeaf_NumericOperators(t *testing.T) {
	profile := sampleProfile()

	tests := []struct {
		name string
		expr types.Expression
		want bool
	}{
		{">= met", types.Expression{Variable: "work.policeRelatedYears", Operator: types.OpGreaterEqual, Value: 3}, true},
		{"> not met", types.Expression{Variable: "work.policeRelatedYears", Operator: types.OpGreater, Value: 3}, false},
		{"< met", types.Expression{Variable: "work.policeRelatedYears", Operator: types.OpLess, Value: 10}, true},
		{"<= met", types.Expression{Variable: "work.policeRelatedYears", Operator: types.OpLessEqual, Value: 3}, true},
		{"numeric string left side", types.Expression{Variable: "fitness.shuttleLevel", Operator: types.OpGreaterEqual, Value: 7}, true},
		{"non-numeric value false", types.Expression{Variable: "education.level", Operator: types.OpGreater, Value: 2}, false},
		{"missing path false", types.Expression{Variable: "fitness.pushups", Operator: types.OpGreaterEqual, Value: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalLeaf(profile, &tt.expr))
		})
	}
}

func TestEvalLeaf_EqualityOnMissingPath(t *testing.T) {
	profile := sampleProfile()

	// A missing value equals only the nil literal.
	eq := types.Expression{Variable: "background.openCharge", Operator: types.OpEqual, Value: nil}
	assert.True(t, evalLeaf(profile, &eq))

	eqLit := types.Expression{Variable: "background.openCharge", Operator: types.OpEqual, Value: true}
	assert.False(t, evalLeaf(profile, &eqLit))

	neq := types.Expression{Variable: "background.openCharge", Operator: types.OpNotEqual, Value: true}
	assert.True(t, evalLeaf(profile, &neq))
}

func TestEvalLeaf_UnknownOperatorFailsClosed(t *testing.T) {
	profile := sampleProfile()
	expr := types.Expression{Variable: "education.level", Operator: "~=", Value: "bachelor"}
	assert.False(t, evalLeaf(profile, &expr))
}

func TestEvalExpr_Composites(t *testing.T) {
	profile := sampleProfile()

	leafTrue := types.Expression{Variable: "fitness.prepCompleted", Operator: types.OpEqual, Value: true}
	leafFalse := types.Expression{Variable: "education.level", Operator: types.OpEqual, Value: "master"}

	tests := []struct {
		name string
		expr types.Expression
		want bool
	}{
		{"all true", types.Expression{All: []types.Expression{leafTrue, leafTrue}}, true},
		{"all with one false", types.Expression{All: []types.Expression{leafTrue, leafFalse}}, false},
		{"empty all is true", types.Expression{All: []types.Expression{}}, true},
		{"any with one true", types.Expression{Any: []types.Expression{leafFalse, leafTrue}}, true},
		{"any all false", types.Expression{Any: []types.Expression{leafFalse}}, false},
		{"empty any is false", types.Expression{Any: []types.Expression{}}, false},
		{"not inverts", types.Expression{Not: &leafFalse}, true},
		{"nested", types.Expression{All: []types.Expression{
			leafTrue,
			{Any: []types.Expression{leafFalse, {Not: &leafFalse}}},
		}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalExpr(profile, &tt.expr))
		})
	}
}

func TestEvalExpr_NilAndEmpty(t *testing.T) {
	assert.False(t, evalExpr(sampleProfile(), nil))
	assert.False(t, evalExpr(sampleProfile(), &types.Expression{}))
}
