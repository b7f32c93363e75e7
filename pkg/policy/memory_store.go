package policy

import (
	"context"
	"sync"
)

// MemoryStore is the reference in-memory Store. It is thread-safe and makes
// structural copies on both Save and Load so neither side can mutate the
// other's state through a shared table.
type MemoryStore struct {
	mu    sync.RWMutex
	table Table
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: Table{}}
}

// Load returns a deep copy of the stored table.
func (s *MemoryStore) Load(ctx context.Context) (Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone(), nil
}

// Save replaces the stored table with a deep copy of the given one.
func (s *MemoryStore) Save(ctx context.Context, table Table) error {
	clone := table.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = clone
	return nil
}

// Clear removes all stored entries. The next Load observes an empty table.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = Table{}
	return nil
}
