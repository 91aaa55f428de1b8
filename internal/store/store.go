package store

import (
	"sync"

	"github.com/jengzang/campus-security-backend-go/internal/models"
)

// Store holds the current activity record collection in memory. Each
// load fully replaces the previous collection; there are no incremental
// updates. Readers get defensive copies, so an in-flight consumer keeps
// a consistent view while a new collection is published.
type Store struct {
	mu      sync.RWMutex
	records []models.ActivityRecord
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Replace atomically publishes a new collection, discarding the old one
func (s *Store) Replace(records []models.ActivityRecord) {
	snapshot := make([]models.ActivityRecord, len(records))
	copy(snapshot, records)

	s.mu.Lock()
	s.records = snapshot
	s.mu.Unlock()
}

// Snapshot returns a copy of the current collection
func (s *Store) Snapshot() []models.ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.ActivityRecord, len(s.records))
	copy(result, s.records)
	return result
}

// Len returns the current collection size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
