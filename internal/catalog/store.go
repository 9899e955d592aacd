package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ktane-web/filter-server/internal/versions"
)

// ErrStaleCatalog is returned when a replacement catalog is not newer than
// the one being served.
var ErrStaleCatalog = errors.New("catalog version is not newer than the current one")

// Store serves the current catalog snapshot to concurrent readers.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore returns a store serving c, which may be nil.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	if c != nil {
		s.current.Store(c)
	}
	return s
}

// Current returns the served snapshot, nil when nothing was loaded yet.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Replace swaps in c when its version is newer than the served one. An empty
// store accepts any catalog.
func (s *Store) Replace(c *Catalog) error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	for {
		old := s.current.Load()
		if old != nil && !versions.IsNewerVersion(c.Version, old.Version) {
			return fmt.Errorf("%w: %q <= %q", ErrStaleCatalog, c.Version, old.Version)
		}
		if s.current.CompareAndSwap(old, c) {
			slog.Info("Catalog replaced", "version", c.Version, "modules", c.Len())
			return nil
		}
	}
}
