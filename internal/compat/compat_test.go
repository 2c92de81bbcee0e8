package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIdenticalSchemasAreFullyCompatible(t *testing.T) {
	s := map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	}
	report := Compare(s, s)
	assert.True(t, report.Backward)
	assert.True(t, report.Forward)
	assert.True(t, report.Full)
	assert.Empty(t, report.Reasons)
}

func TestCompareNewRequiredWithoutDefaultBreaksBackward(t *testing.T) {
	old := map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	}
	nu := map[string]any{
		"type":       "object",
		"required":   []any{"name"},
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.True(t, report.Forward)
	require := []Reason{}
	for _, r := range report.Reasons {
		if r.Kind == ReasonRequiredAdded {
			require = append(require, r)
		}
	}
	assert.Len(t, require, 1)
}

func TestCompareNewRequiredWithDefaultStaysBackwardCompatible(t *testing.T) {
	old := map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	}
	nu := map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "default": "anonymous"},
		},
	}
	report := Compare(old, nu)
	assert.True(t, report.Backward)
}

func TestCompareTypeNarrowedIsIncompatibleBackward(t *testing.T) {
	old := map[string]any{"type": []any{"string", "number"}}
	nu := map[string]any{"type": "string"}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.True(t, report.Forward)
}

func TestCompareTypeWidenedIsIncompatibleForward(t *testing.T) {
	old := map[string]any{"type": "string"}
	nu := map[string]any{"type": []any{"string", "number"}}
	report := Compare(old, nu)
	assert.True(t, report.Backward)
	assert.False(t, report.Forward)
}

func TestCompareRemovingRequiredPropertyBreaksBackward(t *testing.T) {
	old := map[string]any{
		"type":       "object",
		"required":   []any{"name"},
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	}
	nu := map[string]any{"type": "object", "properties": map[string]any{}}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
}

func TestCompareUnresolvedRefIsFullyIncompatible(t *testing.T) {
	old := map[string]any{"type": "object"}
	nu := map[string]any{"$ref": "#/definitions/thing"}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.False(t, report.Forward)
}

func TestCompareUnhandledKeywordIsFullyIncompatible(t *testing.T) {
	old := map[string]any{"type": "string"}
	nu := map[string]any{"type": "string", "pattern": "^[a-z]+$"}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.False(t, report.Forward)

	var found bool
	for _, r := range report.Reasons {
		if r.Kind == ReasonUnhandledKeyword {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCompareEnumShrunkBreaksBackward(t *testing.T) {
	old := map[string]any{"enum": []any{"a", "b", "c"}}
	nu := map[string]any{"enum": []any{"a", "b"}}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.True(t, report.Forward)
}

func TestCompareEnumGrownBreaksForward(t *testing.T) {
	old := map[string]any{"enum": []any{"a", "b"}}
	nu := map[string]any{"enum": []any{"a", "b", "c"}}
	report := Compare(old, nu)
	assert.True(t, report.Backward)
	assert.False(t, report.Forward)
}

func TestCompareRaisedMinimumBreaksBackward(t *testing.T) {
	old := map[string]any{"type": "number", "minimum": 0.0}
	nu := map[string]any{"type": "number", "minimum": 5.0}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.True(t, report.Forward)
}

func TestCompareLoweredMinimumBreaksForward(t *testing.T) {
	old := map[string]any{"type": "number", "minimum": 5.0}
	nu := map[string]any{"type": "number", "minimum": 0.0}
	report := Compare(old, nu)
	assert.True(t, report.Backward)
	assert.False(t, report.Forward)
}

func TestCompareLoweredMaximumBreaksBackward(t *testing.T) {
	old := map[string]any{"type": "integer", "maximum": 100.0}
	nu := map[string]any{"type": "integer", "maximum": 10.0}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.True(t, report.Forward)
}

func TestCompareAddedMinLengthBreaksBackward(t *testing.T) {
	old := map[string]any{"type": "string"}
	nu := map[string]any{"type": "string", "minLength": 3.0}
	report := Compare(old, nu)
	assert.False(t, report.Backward)
	assert.True(t, report.Forward)
}

func TestCompareRemovedMaxItemsBreaksForward(t *testing.T) {
	old := map[string]any{"type": "array", "maxItems": 10.0}
	nu := map[string]any{"type": "array"}
	report := Compare(old, nu)
	assert.True(t, report.Backward)
	assert.False(t, report.Forward)
}

func TestCompareUnchangedConstraintIsFullyCompatible(t *testing.T) {
	old := map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0}
	nu := map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0}
	report := Compare(old, nu)
	assert.True(t, report.Full)
}
