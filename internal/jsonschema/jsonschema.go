// Package jsonschema is the one concrete validator.SchemaValidator
// implementation shipped with the core, wrapping
// github.com/santhosh-tekuri/jsonschema/v5, the standard pure-Go JSON
// Schema implementation, as an external, swappable validator.
package jsonschema

import (
	"bytes"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/gts-project/gts/internal/validator"
)

// Validator implements validator.SchemaValidator using a fresh compiler
// per call, since each schema document belongs to a different GTS
// identifier with no shared $ref base.
type Validator struct{}

// New constructs a Validator.
func New() *Validator { return &Validator{} }

func compile(schema any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

// ValidateSchema reports whether schema compiles as a JSON Schema
// document.
func (v *Validator) ValidateSchema(schema any) (bool, string) {
	if _, err := compile(schema); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// ValidateInstance validates instance against schema, translating the
// library's ValidationError tree into flat per-pointer FieldErrors.
func (v *Validator) ValidateInstance(schema, instance any) []validator.FieldError {
	compiled, err := compile(schema)
	if err != nil {
		return []validator.FieldError{{Pointer: "", Message: err.Error()}}
	}

	err = compiled.Validate(instance)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []validator.FieldError{{Pointer: "", Message: err.Error()}}
	}
	return flatten(ve)
}

// flatten walks a ValidationError tree depth-first, collecting one
// FieldError per leaf cause (leaf = no further causes of its own).
func flatten(ve *jsonschema.ValidationError) []validator.FieldError {
	if len(ve.Causes) == 0 {
		return []validator.FieldError{{
			Pointer: instanceLocationPointer(ve.InstanceLocation),
			Message: ve.Message,
		}}
	}
	var out []validator.FieldError
	for _, cause := range ve.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}

// instanceLocationPointer normalizes the library's InstanceLocation
// (already "/"-joined, empty string at the root) into a JSON pointer.
func instanceLocationPointer(loc string) string {
	if loc == "" {
		return "/"
	}
	return loc
}
