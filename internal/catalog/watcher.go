package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the catalog file into a Store whenever it changes on disk.
// The file is only ever read. A reload that fails to parse, or carries a
// version that is not newer, leaves the previous snapshot in place.
type Watcher struct {
	path     string
	store    *Store
	onReload func(c *Catalog, err error)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadHook registers fn to be called after every reload triggered by a
// file change. c is the served snapshot after the attempt.
func WithReloadHook(fn func(c *Catalog, err error)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// NewWatcher creates a watcher for the catalog file at path.
func NewWatcher(path string, store *Store, opts ...WatcherOption) *Watcher {
	w := &Watcher{path: filepath.Clean(path), store: store}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reload reads the catalog file and offers it to the store.
func (w *Watcher) Reload() error {
	c, err := Load(w.path)
	if err != nil {
		return err
	}
	return w.store.Replace(c)
}

// Run watches the catalog file until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.watcher != nil {
		w.mu.Unlock()
		return errors.New("catalog watcher is already running")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = fw
	w.mu.Unlock()

	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("Failed to close catalog watcher", "error", err)
		}
	}()

	// The directory is watched so that a file removed and later recreated is
	// picked up again. The catalog itself must exist when watching starts.
	if _, err := os.Stat(w.path); err != nil {
		return fmt.Errorf("failed to watch catalog file %s: %w", w.path, err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch catalog file %s: %w", w.path, err)
	}

	slog.Info("Watching catalog file", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping catalog watcher")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return errors.New("watcher event channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				w.reload()
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				slog.Warn("Catalog file removed, serving previous snapshot until it is recreated", "path", w.path)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			slog.Error("Catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	err := w.Reload()
	switch {
	case err == nil:
	case errors.Is(err, ErrStaleCatalog):
		slog.Debug("Ignoring catalog change", "path", w.path, "reason", err)
	default:
		slog.Error("Failed to reload catalog, keeping previous snapshot", "path", w.path, "error", err)
	}
	if w.onReload != nil {
		w.onReload(w.store.Current(), err)
	}
}

// Close releases the file watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	if err != nil {
		return fmt.Errorf("failed to close file watcher: %w", err)
	}
	return nil
}
