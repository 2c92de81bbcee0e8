package store

import "github.com/gts-project/gts/internal/identifier"

// Record is one ingested document paired with the identifiers extracted
// from its root. SchemaID is nil when the document carried no recognized
// schema field.
type Record struct {
	SourcePath string
	Value      any
	EntityID   identifier.Identifier
	SchemaID   *identifier.Identifier
}
