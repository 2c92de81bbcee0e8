package docsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent signals that Root's contents changed and a fresh Ingest
// should be run. Path names one changed file; each debounce window emits
// one event per distinct changed path.
type ChangeEvent struct {
	Path string
}

// Watcher debounces filesystem events under a directory tree into
// coalesced ChangeEvents: recursive directory watching, a debounce
// ticker, and an output channel that's closed when the watch loop exits.
type Watcher struct {
	root     string
	debounce time.Duration
	excludes map[string]bool
	watcher  *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]struct{}

	events chan ChangeEvent
}

// NewWatcher constructs a Watcher over root. debounce <= 0 defaults to
// 500ms.
func NewWatcher(root string, debounce time.Duration, excludeDirs []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	excludes := map[string]bool{}
	for _, d := range excludeDirs {
		excludes[d] = true
	}
	return &Watcher{
		root:     root,
		debounce: debounce,
		excludes: excludes,
		watcher:  fsw,
		pending:  map[string]struct{}{},
		events:   make(chan ChangeEvent, 500),
	}, nil
}

// Events returns the channel of coalesced change events.
func (w *Watcher) Events() <-chan ChangeEvent { return w.events }

// Start begins watching w.root recursively and launches the debounce
// loop. Start returns once the initial set of watches is registered;
// the loop itself runs until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}
	go w.run(ctx)
	return nil
}

// Stop closes the underlying fsnotify watcher.
func (w *Watcher) Stop() error { return w.watcher.Close() }

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if w.excludes[base] || (strings.HasPrefix(base, ".") && base != ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.recordPending(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) recordPending(event fsnotify.Event) {
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if event.Has(fsnotify.Create) {
			_ = w.watcher.Add(event.Name)
		}
		return
	}
	w.pendingMu.Lock()
	w.pending[event.Name] = struct{}{}
	w.pendingMu.Unlock()
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = map[string]struct{}{}
	w.pendingMu.Unlock()

	for _, p := range paths {
		select {
		case w.events <- ChangeEvent{Path: p}:
		default:
		}
	}
}
