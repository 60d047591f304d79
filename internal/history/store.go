package history

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	recs []Record
}

func NewInMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Insert(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Record
	for _, r := range m.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
