package auth

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]User
}

func NewInMemoryStore() UserStore {
	return &memoryStore{byEmail: map[string]User{}}
}

func (m *memoryStore) Insert(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryStore) ByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}
