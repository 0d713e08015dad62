package catalog

import "sync/atomic"

// Store holds the process-wide catalog snapshot. Readers always see one
// consistent snapshot; a reload replaces the whole reference atomically and
// never mutates a snapshot in place.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store seeded with an initial snapshot
func NewStore(cat *Catalog) *Store {
	s := &Store{}
	s.current.Store(cat)
	return s
}

// Load returns the current snapshot. May be nil if the store was never seeded.
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Replace swaps in a new snapshot. In-flight requests keep the snapshot they
// started with.
func (s *Store) Replace(cat *Catalog) {
	s.current.Store(cat)
}
