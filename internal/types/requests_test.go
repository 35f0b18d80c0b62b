//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRequest_Validate(t *testing.T) {
	req := &EvaluateRequest{Profile: map[string]interface{}{"work": map[string]interface{}{}}}
	assert.NoError(t, req.Validate())

	req = &EvaluateRequest{}
	assert.Error(t, req.Validate(), "profile is required")
}

func TestBatchEvaluateRequest_Validate(t *testing.T) {
	req := &BatchEvaluateRequest{Profiles: []map[string]interface{}{{}}}
	assert.NoError(t, req.Validate())

	req = &BatchEvaluateRequest{Profiles: []map[string]interface{}{}}
	assert.Error(t, req.Validate(), "at least one profile is required")

	req = &BatchEvaluateRequest{Profiles: make([]map[string]interface{}, 101)}
	for i := range req.Profiles {
		req.Profiles[i] = map[string]interface{}{}
	}
	assert.Error(t, req.Validate(), "batches are capped at 100 profiles")
}

func TestGradeRequest_Validate(t *testing.T) {
	req := &GradeRequest{QuestionKey: "why_policing"}
	assert.NoError(t, req.Validate(), "an empty answer is valid input")

	req = &GradeRequest{Answer: "An answer."}
	assert.Error(t, req.Validate(), "question key is required")
}

func TestExpression_Forms(t *testing.T) {
	leaf := Expression{Variable: "work.policeRelatedYears", Operator: OpGreaterEqual, Value: 3}
	assert.True(t, leaf.IsLeaf())
	assert.False(t, leaf.IsComposite())

	composite := Expression{All: []Expression{leaf}}
	assert.False(t, composite.IsLeaf())
	assert.True(t, composite.IsComposite())
}

func TestExpression_EmptyGroupSurvivesRoundTrip(t *testing.T) {
	var expr Expression
	require.NoError(t, json.Unmarshal([]byte(`{"all": []}`), &expr))

	assert.NotNil(t, expr.All, "an explicit empty group stays present")
	assert.Empty(t, expr.All)
	assert.True(t, expr.IsComposite())

	var leaf Expression
	require.NoError(t, json.Unmarshal([]byte(`{"variable": "x", "operator": "==", "value": 1}`), &leaf))
	assert.Nil(t, leaf.All, "absent groups stay nil")
}
