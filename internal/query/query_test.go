package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gts-project/gts/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	s := store.New(store.DefaultConfig())
	docs := []store.Document{
		{Path: "a.json", Value: map[string]any{
			"$id": "gts.x.core.events.event.v1.0", "status": "active", "priority": float64(3),
		}},
		{Path: "b.json", Value: map[string]any{
			"$id": "gts.x.core.events.event.v1.1", "status": "archived", "priority": float64(1),
		}},
	}
	_, err := s.Ingest(context.Background(), store.NewSliceSource(docs))
	require.NoError(t, err)
	return s
}

func TestParseSimplePattern(t *testing.T) {
	q, err := Parse("gts.x.core.events.*")
	require.NoError(t, err)
	assert.Nil(t, q.Filter)
	assert.Nil(t, q.Attr)
}

func TestParseWithFilterAndAttr(t *testing.T) {
	q, err := Parse(`gts.x.core.events.*[status = "active"]@priority`)
	require.NoError(t, err)
	require.NotNil(t, q.Filter)
	require.Len(t, q.Filter.Terms, 1)
	assert.Equal(t, []string{"status"}, q.Filter.Terms[0].Attr)
	assert.Equal(t, "=", q.Filter.Terms[0].Op)
	assert.Equal(t, []string{"priority"}, q.Attr)
}

func TestEvaluateFilterEquality(t *testing.T) {
	s := seededStore(t)
	q, err := Parse(`gts.x.core.events.*[status = "active"]`)
	require.NoError(t, err)
	results, err := q.Evaluate(s, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gts.x.core.events.event.v1.0", results[0].ID.Render())
}

func TestEvaluateWithAttrProjection(t *testing.T) {
	s := seededStore(t)
	q, err := Parse(`gts.x.core.events.*@priority`)
	require.NoError(t, err)
	results, err := q.Evaluate(s, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestEvaluateNumericComparison(t *testing.T) {
	s := seededStore(t)
	q, err := Parse(`gts.x.core.events.*[priority > 2]`)
	require.NoError(t, err)
	results, err := q.Evaluate(s, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gts.x.core.events.event.v1.0", results[0].ID.Render())
}

func TestEvaluateAndJoin(t *testing.T) {
	s := seededStore(t)
	q, err := Parse(`gts.x.core.events.*[status = "active" and priority > 1]`)
	require.NoError(t, err)
	results, err := q.Evaluate(s, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestEvaluateSubstringMatch(t *testing.T) {
	s := seededStore(t)
	q, err := Parse(`gts.x.core.events.*[status ~ "arch"]`)
	require.NoError(t, err)
	results, err := q.Evaluate(s, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gts.x.core.events.event.v1.1", results[0].ID.Render())
}

func TestParseUnterminatedFilterIsSyntaxError(t *testing.T) {
	_, err := Parse(`gts.x.core.events.*[status = "active"`)
	assert.Error(t, err)
}

func TestEvaluateRespectsLimit(t *testing.T) {
	s := seededStore(t)
	q, err := Parse(`gts.x.core.events.*`)
	require.NoError(t, err)
	results, err := q.Evaluate(s, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
}
