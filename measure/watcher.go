package measure

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures measurement-file watching.
type WatcherConfig struct {
	// Paths are the YAML measurement files to watch.
	Paths []string

	// DebounceDelay is how long to wait for more changes before
	// reloading.
	DebounceDelay time.Duration

	// Logger for reload events.
	Logger *slog.Logger
}

// Watcher reloads measurement files into a store when they change.
type Watcher struct {
	store   *Store
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]struct{} // paths with unprocessed changes
}

// NewWatcher creates a watcher for the given store and files.
func NewWatcher(store *Store, config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		store:   store,
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]struct{}),
	}, nil
}

// Start loads the configured files, begins watching their directories,
// and blocks until the context is canceled. Files that do not exist yet
// are picked up when created.
func (w *Watcher) Start(ctx context.Context) error {
	watched := make(map[string]bool, len(w.config.Paths))
	dirs := make(map[string]bool)

	for _, path := range w.config.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true

		if err := w.store.LoadFile(abs); err != nil {
			w.logger.Warn("skipping measurement file", "path", abs, "error", err)
		} else {
			w.logger.Debug("loaded measurement file", "path", abs)
		}
	}

	// Watch the parent directories so edits via rename (the common
	// editor save strategy) are still seen.
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	timer := time.NewTimer(w.config.DebounceDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.pendingMu.Lock()
			w.pending[abs] = struct{}{}
			w.pendingMu.Unlock()
			timer.Reset(w.config.DebounceDelay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("measurement watcher error", "error", err)

		case <-timer.C:
			w.pendingMu.Lock()
			paths := make([]string, 0, len(w.pending))
			for p := range w.pending {
				paths = append(paths, p)
			}
			w.pending = make(map[string]struct{})
			w.pendingMu.Unlock()

			for _, p := range paths {
				if err := w.store.LoadFile(p); err != nil {
					w.logger.Warn("reload measurement file", "path", p, "error", err)
					continue
				}
				w.logger.Info("reloaded measurement file", "path", p)
			}
		}
	}
}
