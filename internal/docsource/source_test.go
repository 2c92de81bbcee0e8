package docsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gts-project/gts/internal/store"
)

func writeFile(t *testing.T, path, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileSourceMatchesIncludeGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schemas", "event.json"), `{"$id":"gts.x.core.events.event.v1~"}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")

	src, err := New(DefaultConfig(dir))
	require.NoError(t, err)

	var docs []store.Document
	for {
		doc, ok, err := src.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 1)
	assert.Equal(t, map[string]any{"$id": "gts.x.core.events.event.v1~"}, docs[0].Value)
}

func TestFileSourceExcludePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.json"), `{"$id":"gts.x.core.events.event.v1.0"}`)
	writeFile(t, filepath.Join(dir, "vendor", "skip.json"), `{"$id":"gts.x.core.events.event.v1.1"}`)

	cfg := DefaultConfig(dir)
	cfg.Exclude = []string{"vendor/**"}
	src, err := New(cfg)
	require.NoError(t, err)

	var count int
	for {
		_, ok, err := src.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 1, count)
}

func TestFileSourceSplitsTopLevelArrayIntoMultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "batch.json"), `[
		{"$id":"gts.x.core.events.event.v1.0"},
		{"$id":"gts.x.core.events.event.v1.1"}
	]`)

	src, err := New(DefaultConfig(dir))
	require.NoError(t, err)

	var docs []store.Document
	for {
		doc, ok, err := src.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)
	assert.Equal(t, "gts.x.core.events.event.v1.0", docs[0].Value.(map[string]any)["$id"])
	assert.Equal(t, "gts.x.core.events.event.v1.1", docs[1].Value.(map[string]any)["$id"])
}

func TestFileSourceSkipsDefaultExcludedDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.json"), `{"$id":"gts.x.core.events.event.v1.0"}`)
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "skip.json"), `{"$id":"gts.x.core.events.event.v1.1"}`)
	writeFile(t, filepath.Join(dir, "dist", "skip.json"), `{"$id":"gts.x.core.events.event.v1.2"}`)
	writeFile(t, filepath.Join(dir, "build", "skip.json"), `{"$id":"gts.x.core.events.event.v1.3"}`)

	src, err := New(DefaultConfig(dir))
	require.NoError(t, err)

	var count int
	for {
		_, ok, err := src.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 1, count)
}

func TestFileSourceFeedsStoreIngest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{"$id":"gts.x.core.events.event.v1.0"}`)

	src, err := New(DefaultConfig(dir))
	require.NoError(t, err)

	s := store.New(store.DefaultConfig())
	report, err := s.Ingest(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Indexed)
}
