// Package notes implements the personal journal: per-user notes with
// create, partial update, and delete.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/7innovations/fixu/internal/history"
)

var (
	ErrNotFound = errors.New("note not found")
	ErrNotOwner = errors.New("note belongs to another user")
	ErrInvalid  = errors.New("title and content required")
)

type Note struct {
	ID        string `json:"id"`
	UserID    string `json:"-"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Patch carries a partial update; nil fields stay untouched.
type Patch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type Store interface {
	Insert(ctx context.Context, n Note) error
	Get(ctx context.Context, id string) (Note, error)
	ListByUser(ctx context.Context, userID string) ([]Note, error)
	Update(ctx context.Context, n Note) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:12] },
	}
}

func (s *Service) Add(ctx context.Context, userID, title, content string) (Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return Note{}, ErrInvalid
	}
	n := Note{
		ID:        s.newID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now().Format(history.TimeLayout),
	}
	if err := s.store.Insert(ctx, n); err != nil {
		return Note{}, fmt.Errorf("store note: %w", err)
	}
	return n, nil
}

// List returns the user's notes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Note, error) {
	ns, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// reuse the history ordering rules: fixed layout, malformed last
	recs := make([]history.Record, len(ns))
	for i, n := range ns {
		recs[i] = history.Record{ID: n.ID, CreatedAt: n.CreatedAt}
	}
	ordered := history.Reconcile(recs, 0)
	byID := make(map[string]Note, len(ns))
	for _, n := range ns {
		byID[n.ID] = n
	}
	out := make([]Note, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, byID[r.ID])
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, p Patch) (Note, error) {
	n, err := s.owned(ctx, userID, id)
	if err != nil {
		return Note{}, err
	}
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return Note{}, ErrInvalid
		}
		n.Title = t
	}
	if p.Content != nil {
		c := strings.TrimSpace(*p.Content)
		if c == "" {
			return Note{}, ErrInvalid
		}
		n.Content = c
	}
	n.UpdatedAt = s.now().Format(history.TimeLayout)
	if err := s.store.Update(ctx, n); err != nil {
		return Note{}, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (s *Service) owned(ctx context.Context, userID, id string) (Note, error) {
	n, err := s.store.Get(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if n.UserID != userID {
		return Note{}, ErrNotOwner
	}
	return n, nil
}
