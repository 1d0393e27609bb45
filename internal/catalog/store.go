package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/nguyentantai21042004/notes-craft/internal/logger"
)

// Store holds the current Catalog snapshot. Reload swaps the whole snapshot;
// readers holding an older one keep a consistent view.
type Store struct {
	path    string
	current atomic.Pointer[Catalog]
	logger  logger.Logger
}

// NewStore loads the catalog at path, or the built-in one when path is empty.
func NewStore(path string, log logger.Logger) (*Store, error) {
	s := &Store{path: path, logger: log}
	if path == "" {
		s.current.Store(Default())
		return s, nil
	}

	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.current.Store(c)
	return s, nil
}

// Current returns the active snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Path returns the backing file, "" for the built-in catalog.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous snapshot stays active.
func (s *Store) Reload(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	c, err := LoadFile(s.path)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	s.current.Store(c)
	s.logger.Info(ctx, "Catalog reloaded from %s: %d subjects, %d languages",
		s.path, len(c.subjects)-1, len(c.languages))
	return nil
}
