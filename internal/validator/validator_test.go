package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gts-project/gts/internal/gtserr"
	"github.com/gts-project/gts/internal/identifier"
	"github.com/gts-project/gts/internal/store"
)

type fakeValidator struct {
	schemaOK     bool
	schemaReason string
	fieldErrors  []FieldError
}

func (f *fakeValidator) ValidateSchema(schema any) (bool, string) {
	return f.schemaOK, f.schemaReason
}

func (f *fakeValidator) ValidateInstance(schema, instance any) []FieldError {
	return f.fieldErrors
}

func newStoreWith(t *testing.T, docs []store.Document) *store.Store {
	s := store.New(store.DefaultConfig())
	_, err := s.Ingest(context.Background(), store.NewSliceSource(docs))
	require.NoError(t, err)
	return s
}

func id(t *testing.T, s string) identifier.Identifier {
	parsed, err := identifier.Parse(s)
	require.NoError(t, err)
	return parsed
}

func TestValidateInstanceNotFound(t *testing.T) {
	s := store.New(store.DefaultConfig())
	v := New(s, &fakeValidator{schemaOK: true})
	_, err := v.ValidateInstance(id(t, "gts.x.core.events.event.v1.0"))
	require.Error(t, err)
	assert.Equal(t, gtserr.KindNotFound, err.(*gtserr.Error).Kind)
}

func TestValidateInstanceNoSchema(t *testing.T) {
	s := newStoreWith(t, []store.Document{
		{Path: "i.json", Value: map[string]any{"$id": "gts.x.core.events.event.v1.0"}},
	})
	v := New(s, &fakeValidator{schemaOK: true})
	_, err := v.ValidateInstance(id(t, "gts.x.core.events.event.v1.0"))
	require.Error(t, err)
	assert.Equal(t, gtserr.KindNoSchema, err.(*gtserr.Error).Kind)
}

func TestValidateInstanceSchemaMissing(t *testing.T) {
	s := newStoreWith(t, []store.Document{
		{Path: "i.json", Value: map[string]any{
			"$id": "gts.x.core.events.event.v1.0", "$schema": "gts.x.core.events.event.v1~",
		}},
	})
	v := New(s, &fakeValidator{schemaOK: true})
	_, err := v.ValidateInstance(id(t, "gts.x.core.events.event.v1.0"))
	require.Error(t, err)
	assert.Equal(t, gtserr.KindSchemaMissing, err.(*gtserr.Error).Kind)
}

func TestValidateInstanceSchemaInvalid(t *testing.T) {
	s := newStoreWith(t, []store.Document{
		{Path: "s.json", Value: map[string]any{"$id": "gts.x.core.events.event.v1~"}},
		{Path: "i.json", Value: map[string]any{
			"$id": "gts.x.core.events.event.v1.0", "$schema": "gts.x.core.events.event.v1~",
		}},
	})
	v := New(s, &fakeValidator{schemaOK: false, schemaReason: "missing type keyword"})
	_, err := v.ValidateInstance(id(t, "gts.x.core.events.event.v1.0"))
	require.Error(t, err)
	assert.Equal(t, gtserr.KindSchemaInvalid, err.(*gtserr.Error).Kind)
}

func TestValidateInstanceInvalid(t *testing.T) {
	s := newStoreWith(t, []store.Document{
		{Path: "s.json", Value: map[string]any{"$id": "gts.x.core.events.event.v1~"}},
		{Path: "i.json", Value: map[string]any{
			"$id": "gts.x.core.events.event.v1.0", "$schema": "gts.x.core.events.event.v1~",
		}},
	})
	v := New(s, &fakeValidator{
		schemaOK:    true,
		fieldErrors: []FieldError{{Pointer: "/name", Message: "required"}},
	})
	result, err := v.ValidateInstance(id(t, "gts.x.core.events.event.v1.0"))
	require.Error(t, err)
	assert.Equal(t, gtserr.KindInstanceInvalid, err.(*gtserr.Error).Kind)
	assert.False(t, result.OK)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/name", result.Errors[0].Pointer)
}

func TestValidateInstanceOK(t *testing.T) {
	s := newStoreWith(t, []store.Document{
		{Path: "s.json", Value: map[string]any{"$id": "gts.x.core.events.event.v1~"}},
		{Path: "i.json", Value: map[string]any{
			"$id": "gts.x.core.events.event.v1.0", "$schema": "gts.x.core.events.event.v1~",
		}},
	})
	v := New(s, &fakeValidator{schemaOK: true})
	result, err := v.ValidateInstance(id(t, "gts.x.core.events.event.v1.0"))
	require.NoError(t, err)
	assert.True(t, result.OK)
}
