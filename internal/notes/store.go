package notes

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	notes map[string]Note
	order []string
}

func NewInMemoryStore() Store {
	return &memoryStore{notes: map[string]Note{}}
}

func (m *memoryStore) Insert(_ context.Context, n Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[n.ID] = n
	m.order = append(m.order, n.ID)
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return n, nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID string) ([]Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Note
	for _, id := range m.order {
		if n, ok := m.notes[id]; ok && n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memoryStore) Update(_ context.Context, n Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[n.ID]; !ok {
		return ErrNotFound
	}
	m.notes[n.ID] = n
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}
