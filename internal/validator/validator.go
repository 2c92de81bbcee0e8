// Package validator resolves an instance's schema through the store,
// then delegates the actual structural check to an external
// SchemaValidator. The package never parses JSON Schema itself — that
// belongs entirely to whatever SchemaValidator implementation is wired
// in (internal/jsonschema). Each failure mode along the way — missing
// instance, missing schema_id, unresolved schema, invalid schema,
// invalid instance — is its own gtserr.Kind rather than a single opaque
// error, so a caller can act on the failure programmatically.
package validator

import (
	"github.com/gts-project/gts/internal/gtserr"
	"github.com/gts-project/gts/internal/identifier"
	"github.com/gts-project/gts/internal/store"
)

// FieldError is one per-pointer validation failure reported by the
// external schema validator.
type FieldError struct {
	Pointer string
	Message string
}

// Result is the outcome of validating a single instance.
type Result struct {
	OK     bool
	Errors []FieldError
}

// SchemaValidator is the external collaborator this package requires:
// given a schema document and an instance document, it reports
// whether the instance satisfies the schema, or that the schema itself
// is structurally invalid. The core never implements JSON Schema
// evaluation; it only consumes this interface.
type SchemaValidator interface {
	// ValidateSchema reports whether schema is itself a well-formed JSON
	// Schema document, returning a description of the defect if not.
	ValidateSchema(schema any) (ok bool, problem string)

	// ValidateInstance checks instance against schema, returning one
	// FieldError per violation.
	ValidateInstance(schema, instance any) []FieldError
}

// Validator ties a Store to a SchemaValidator to implement validate_instance.
type Validator struct {
	store     *store.Store
	validator SchemaValidator
}

// New constructs a Validator over st, delegating structural checks to sv.
func New(st *store.Store, sv SchemaValidator) *Validator {
	return &Validator{store: st, validator: sv}
}

// ValidateInstance resolves instanceID's schema and checks the instance
// against it, returning a typed failure for each stage that can go wrong.
func (v *Validator) ValidateInstance(instanceID identifier.Identifier) (Result, error) {
	rec, ok := v.store.Get(instanceID)
	if !ok {
		return Result{}, gtserr.New(gtserr.KindNotFound, ErrInstanceNotFound,
			"instance not found").WithIdentifier(instanceID.Render())
	}
	if rec.SchemaID == nil {
		return Result{}, gtserr.New(gtserr.KindNoSchema, ErrNoSchema,
			"instance has no schema_id").WithIdentifier(instanceID.Render())
	}

	schemaRec, ok := v.store.Get(*rec.SchemaID)
	if !ok {
		return Result{}, gtserr.New(gtserr.KindSchemaMissing, ErrSchemaMissing,
			"schema not found in store").WithIdentifier(rec.SchemaID.Render())
	}

	if ok, problem := v.validator.ValidateSchema(schemaRec.Value); !ok {
		return Result{}, gtserr.New(gtserr.KindSchemaInvalid, ErrSchemaInvalid,
			problem).WithIdentifier(rec.SchemaID.Render())
	}

	fieldErrs := v.validator.ValidateInstance(schemaRec.Value, rec.Value)
	if len(fieldErrs) > 0 {
		return Result{OK: false, Errors: fieldErrs}, gtserr.New(gtserr.KindInstanceInvalid, ErrInstanceInvalid,
			"instance does not satisfy its schema").WithIdentifier(instanceID.Render())
	}

	return Result{OK: true}, nil
}
