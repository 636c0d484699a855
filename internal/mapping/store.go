package mapping

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds immutable mapping records addressed by opaque generated ids.
// Each processing session owns its own Store; there is no process-wide
// singleton and no automatic eviction — the owner disposes of the store when
// the session ends.
type Store struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{recs: make(map[string]Record)}
}

// Put inserts a record and returns its generated identifier. Callers must
// treat the record as frozen after insertion; replacing a mapping means
// creating a new one.
func (s *Store) Put(r Record) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.recs[id] = r
	s.mu.Unlock()
	return id
}

// Get returns the record for id, if present.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	r, ok := s.recs[id]
	s.mu.RUnlock()
	return r, ok
}

// Len reports how many mappings the store holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}
