// ABOUTME: fsnotify-based watcher for config hot reload
// ABOUTME: Watches the parent directories so editors that replace files are seen; events are debounced per file

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mauromedda/tui-overlay/internal/log"
)

// DefaultDebounce collapses the burst of events one save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher calls onChange with the path of a monitored file after it is
// written, created, renamed or removed.
type Watcher struct {
	files    map[string]bool
	onChange func(path string)
	debounce time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewWatcher creates a watcher for paths. Files that do not exist yet are
// picked up once created, provided their directory exists.
func NewWatcher(paths []string, onChange func(path string)) *Watcher {
	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		files[filepath.Clean(p)] = true
	}
	return &Watcher{
		files:    files,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   log.With("config"),
		timers:   make(map[string]*time.Timer),
	}
}

// SetDebounce overrides DefaultDebounce. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Run watches until ctx is done. It returns an error only when the
// underlying watcher cannot be created or no directory can be watched.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	watched := 0
	seen := make(map[string]bool)
	for path := range w.files {
		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if _, err := os.Stat(dir); err != nil {
			w.logger.Debug("not watching %s: %v", dir, err)
			continue
		}
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("watch %s: %v", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no config directory to watch")
	}

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)
	if !w.files[path] || ev.Op == fsnotify.Chmod {
		return
	}
	w.logger.Debug("%s %s", ev.Op, path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.onChange(path)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
