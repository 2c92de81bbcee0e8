// Package store implements the GTS document store: ingest, lookup, and
// reference-integrity checking over a set of JSON documents keyed by the
// entity/schema identifiers extracted from their roots.
//
// The store rebuilds its whole index on every Ingest rather than mutating
// it incrementally: a fresh pair of maps is built from the source, and
// only swapped into place once the entire source has been consumed
// without error. A failed ingest leaves the previously-built index
// untouched.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gts-project/gts/internal/gtserr"
	"github.com/gts-project/gts/internal/identifier"
)

// IngestReport summarizes a successful Ingest call: documents consulted,
// documents indexed, and any non-fatal per-document problems encountered
// along the way (a malformed entity_id/schema_id field skips that
// document rather than aborting the whole pass).
type IngestReport struct {
	Considered int
	Indexed    int
	Errors     []error
}

// BrokenRef names an instance whose schema_id does not resolve to any
// known schema in the store.
type BrokenRef struct {
	InstanceID      identifier.Identifier
	MissingSchemaID identifier.Identifier
}

// Store is the in-memory, identifier-indexed document index. The zero
// value is not usable; construct with New.
type Store struct {
	mu       sync.RWMutex
	cfg      Config
	byID     map[string]Record
	bySchema map[string]map[string]struct{}
}

// New constructs an empty Store using cfg for entity_id/schema_id field
// extraction.
func New(cfg Config) *Store {
	return &Store{
		cfg:      cfg,
		byID:     map[string]Record{},
		bySchema: map[string]map[string]struct{}{},
	}
}

// Ingest drains src, building a fresh index and swapping it into place only
// if the whole source is consumed without a duplicate entity_id. On a
// duplicate, Ingest returns a *gtserr.Error of KindDuplicateEntity and the
// store's existing index is left unchanged.
func (s *Store) Ingest(ctx context.Context, src DocumentSource) (*IngestReport, error) {
	newByID := map[string]Record{}
	newBySchema := map[string]map[string]struct{}{}
	report := &IngestReport{}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		report.Considered++

		rec, skip, err := s.extractRecord(doc)
		if err != nil {
			report.Errors = append(report.Errors, err)
			continue
		}
		if skip {
			continue
		}

		key := rec.EntityID.Render()
		if existing, dup := newByID[key]; dup {
			a, b := existing.SourcePath, rec.SourcePath
			if b < a {
				a, b = b, a
			}
			return nil, gtserr.New(gtserr.KindDuplicateEntity, ErrDuplicateEntity,
				fmt.Sprintf("duplicate entity id %q in %q and %q", key, a, b)).
				WithIdentifier(key)
		}
		newByID[key] = rec
		report.Indexed++

		if rec.SchemaID != nil {
			schemaKey := rec.SchemaID.Render()
			set := newBySchema[schemaKey]
			if set == nil {
				set = map[string]struct{}{}
				newBySchema[schemaKey] = set
			}
			set[key] = struct{}{}
		}
	}

	s.mu.Lock()
	s.byID = newByID
	s.bySchema = newBySchema
	s.mu.Unlock()

	return report, nil
}

// extractRecord consults cfg.EntityIDFields and cfg.SchemaIDFields in order
// against doc's root fields. skip is true when no field yielded a valid,
// non-pattern entity_id (the document is silently excluded from the
// index — absence of a usable entity_id is not an error).
// A present-but-malformed field value is a non-fatal error.
func (s *Store) extractRecord(doc Document) (Record, bool, error) {
	root, ok := doc.Value.(map[string]any)
	if !ok {
		return Record{}, true, nil
	}

	entityID, found, malformed := firstIdentifier(root, s.cfg.EntityIDFields)
	if malformed != "" {
		return Record{}, false, gtserr.New(gtserr.KindIngestError, ErrMalformedEntityID,
			fmt.Sprintf("%s: malformed entity id field %q", doc.Path, malformed))
	}
	if !found || entityID.IsPattern() {
		return Record{}, true, nil
	}

	rec := Record{SourcePath: doc.Path, Value: doc.Value, EntityID: entityID}

	schemaID, found, _ := firstIdentifier(root, s.cfg.SchemaIDFields)
	if found && !schemaID.IsPattern() {
		rec.SchemaID = &schemaID
	}
	return rec, false, nil
}

// firstIdentifier returns the first field in fields present at root whose
// string value parses as an identifier. malformed carries the field name
// when a field is present but its value fails to parse, so the caller can
// distinguish "absent" from "present but broken".
func firstIdentifier(root map[string]any, fields []string) (id identifier.Identifier, found bool, malformed string) {
	for _, field := range fields {
		raw, present := root[field]
		if !present {
			continue
		}
		text, ok := raw.(string)
		if !ok {
			return identifier.Identifier{}, false, field
		}
		parsed, err := identifier.Parse(text)
		if err != nil {
			return identifier.Identifier{}, false, field
		}
		return parsed, true, ""
	}
	return identifier.Identifier{}, false, ""
}

// Get looks up a record by its exact, non-pattern entity identifier.
func (s *Store) Get(id identifier.Identifier) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[id.Render()]
	return rec, ok
}

// List returns every indexed record, sorted ascending by canonical
// identifier string for deterministic output. limit <= 0 means unbounded.
func (s *Store) List(limit int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EntityID.Render() < out[j].EntityID.Render()
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// InstancesOf returns the entity identifiers of every record whose
// schema_id exactly equals schemaID (no pattern matching — pattern-based
// discovery belongs to the query language).
func (s *Store) InstancesOf(schemaID identifier.Identifier) []identifier.Identifier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.bySchema[schemaID.Render()]
	out := make([]identifier.Identifier, 0, len(set))
	for key := range set {
		out = append(out, s.byID[key].EntityID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Render() < out[j].Render() })
	return out
}

// BrokenReferences returns every record whose schema_id does not resolve
// to a known schema. A single-link schema_id must resolve exactly; a
// chained schema_id need only have its head link resolve — a carve-out
// for chain composition, since the head schema is expected to exist
// independently, but intermediate/derived links in a chain are not
// separately registered entities.
func (s *Store) BrokenReferences() []BrokenRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []BrokenRef
	for _, rec := range s.byID {
		if rec.SchemaID == nil {
			continue
		}
		if s.schemaResolves(*rec.SchemaID) {
			continue
		}
		out = append(out, BrokenRef{InstanceID: rec.EntityID, MissingSchemaID: *rec.SchemaID})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InstanceID.Render() < out[j].InstanceID.Render()
	})
	return out
}

// schemaResolves reports whether schemaID (or, for a chained identifier,
// its head link alone) names a schema present in the store as some
// record's entity_id.
func (s *Store) schemaResolves(schemaID identifier.Identifier) bool {
	key := schemaID.Render()
	if _, ok := s.byID[key]; ok {
		return true
	}
	if len(schemaID.ChainLinks()) > 1 {
		headKey := schemaID.HeadIdentifier().Render()
		if _, ok := s.byID[headKey]; ok {
			return true
		}
	}
	return false
}

// ChainReferents returns the entity identifiers of every schema record
// whose composition chain contains a link matching schemaID, including
// schemaID's own direct registrants. This generalizes the chain-head
// carve-out BrokenReferences relies on into a standalone introspection
// operation: "what depends on this schema, directly or through chaining".
func (s *Store) ChainReferents(schemaID identifier.Identifier) []identifier.Identifier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := schemaID.Render()
	var out []identifier.Identifier
	for _, rec := range s.byID {
		if !rec.EntityID.IsSchema() && !rec.EntityID.IsSchemaVersionPin() {
			continue
		}
		for _, link := range rec.EntityID.ChainLinks() {
			single := identifier.Identifier{Links: []identifier.Link{link}}
			if single.Render() == target || rec.EntityID.Render() == target {
				out = append(out, rec.EntityID)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Render() < out[j].Render() })
	return out
}
