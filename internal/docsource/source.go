// Package docsource is the reference filesystem-backed
// store.DocumentSource: it walks a directory tree, matches files against
// doublestar glob patterns, and decodes each as JSON. It also offers a
// change watcher for re-ingest-on-change workflows.
package docsource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gts-project/gts/internal/store"
)

// defaultExcludeDirs are directory names skipped during the walk
// regardless of cfg.Exclude, so a vendored/build tree under Root never
// contributes documents.
var defaultExcludeDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

// Config selects which files under Root are treated as documents.
type Config struct {
	Root    string
	Include []string
	Exclude []string
}

// DefaultConfig matches every .json file under Root.
func DefaultConfig(root string) Config {
	return Config{Root: root, Include: []string{"**/*.json"}}
}

// FileSource implements store.DocumentSource over a directory tree,
// matched once at construction time: an ingest in progress is not
// expected to observe files that appear mid-pass.
type FileSource struct {
	cfg     Config
	paths   []string
	pos     int
	pending []store.Document
}

// New walks cfg.Root and collects every file matching cfg.Include and
// none of cfg.Exclude, relative to Root. Directories named
// node_modules, dist, or build are never descended into.
func New(cfg Config) (*FileSource, error) {
	var matched []string
	err := filepath.WalkDir(cfg.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != cfg.Root && defaultExcludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(cfg.Include, rel) {
			return nil
		}
		if matchesAny(cfg.Exclude, rel) {
			return nil
		}
		matched = append(matched, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &FileSource{cfg: cfg, paths: matched}, nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// Next implements store.DocumentSource. A file whose top-level JSON
// value is an array yields one document per element, indexed into
// Path as "path[N]"; any other value yields a single document for the
// whole file.
func (s *FileSource) Next() (store.Document, bool, error) {
	for len(s.pending) == 0 {
		if s.pos >= len(s.paths) {
			return store.Document{}, false, nil
		}
		path := s.paths[s.pos]
		s.pos++

		raw, err := os.ReadFile(path)
		if err != nil {
			return store.Document{}, false, fmt.Errorf("%s: %w", path, err)
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return store.Document{}, false, fmt.Errorf("%s: %w", path, err)
		}

		if items, ok := value.([]any); ok {
			for idx, item := range items {
				s.pending = append(s.pending, store.Document{
					Path:  fmt.Sprintf("%s[%d]", path, idx),
					Value: item,
				})
			}
			continue
		}
		s.pending = append(s.pending, store.Document{Path: path, Value: value})
	}

	doc := s.pending[0]
	s.pending = s.pending[1:]
	return doc, true, nil
}
