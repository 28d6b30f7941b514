package repository

import (
	"context"
	"sync"

	"github.com/pontolago/ponto-api/internal/domain/timesheet"
)

// MemoryStore keeps the snapshot in process. Default driver for dev
// and the backbone of the tests. Load and Save exchange deep copies so
// callers never alias the held snapshot.
type MemoryStore struct {
	mu   sync.Mutex
	snap *timesheet.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: timesheet.NewSnapshot()}
}

func (s *MemoryStore) Load(ctx context.Context) (*timesheet.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, snap *timesheet.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	return nil
}

// Compile-time check
var _ timesheet.Store = (*MemoryStore)(nil)
