// Package gtserr defines the structured error vocabulary shared by every
// GTS core package. The core never panics and never logs; every failure
// surfaces as a typed *Error carrying a closed Kind, plus enough context
// (a code, a message, an optional JSON pointer, an optional identifier)
// for programmatic consumption by a caller.
package gtserr

import "fmt"

// Kind is one of the closed set of failure categories a core package can
// report.
type Kind string

const (
	KindParseError       Kind = "ParseError"
	KindDuplicateEntity  Kind = "DuplicateEntity"
	KindIngestError      Kind = "IngestError"
	KindNotFound         Kind = "NotFound"
	KindNoSchema         Kind = "NoSchema"
	KindSchemaMissing    Kind = "SchemaMissing"
	KindSchemaInvalid    Kind = "SchemaInvalid"
	KindInstanceInvalid  Kind = "InstanceInvalid"
	KindIncompatible     Kind = "Incompatible"
	KindUncasteable      Kind = "Uncasteable"
	KindQuerySyntax      Kind = "QuerySyntax"
	KindBrokenReference  Kind = "BrokenReference"
)

// Error is the structured payload behind every core failure. Code is a
// short machine-readable string (e.g. "E012", "E040"); Pointer, when set,
// is a JSON Pointer into the offending document; Identifier, when set, is
// the canonical rendering of the identifier the error concerns.
type Error struct {
	Kind       Kind
	Code       string
	Message    string
	Pointer    string
	Identifier string
}

func (e *Error) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Identifier)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error with the given kind, code, and message.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// WithIdentifier returns a copy of e annotated with an identifier.
func (e *Error) WithIdentifier(id string) *Error {
	c := *e
	c.Identifier = id
	return &c
}

// WithPointer returns a copy of e annotated with a JSON pointer.
func (e *Error) WithPointer(ptr string) *Error {
	c := *e
	c.Pointer = ptr
	return &c
}
