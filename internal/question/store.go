// Package question persists the fixed question bank. Rows are written
// once by seeding and read-only afterward.
package question

import (
	"context"
	"sync"

	"github.com/7innovations/fixu/pkg/questionbank"
)

type Store interface {
	ByCategory(ctx context.Context, cat questionbank.Category) ([]questionbank.Question, error)
	// InsertAll writes the catalog only when no rows exist yet. The
	// emptiness check and the insert happen atomically, so two racing
	// seed passes cannot double-insert.
	InsertAll(ctx context.Context, qs []questionbank.Question) error
	CountAll(ctx context.Context) (int, error)
}

type memoryStore struct {
	mu   sync.RWMutex
	rows []questionbank.Question
	next int64
}

func NewInMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) ByCategory(_ context.Context, cat questionbank.Category) ([]questionbank.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []questionbank.Question
	for _, q := range m.rows {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryStore) CountAll(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows), nil
}

func (m *memoryStore) InsertAll(_ context.Context, qs []questionbank.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rows) > 0 {
		// seeding is the only writer; a second pass is a no-op
		return nil
	}
	for _, q := range qs {
		m.next++
		q.ID = m.next
		m.rows = append(m.rows, q)
	}
	return nil
}
