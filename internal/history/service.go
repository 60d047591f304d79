package history

import "context"

// DefaultLimit is the display window the home screen uses.
const DefaultLimit = 5

type Service struct {
	store Store
	limit int
}

func NewService(store Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{store: store, limit: limit}
}

// Recent returns the user's reconciled history: newest first, capped at
// the configured display window. An empty slice means the caller should
// show its empty state.
func (s *Service) Recent(ctx context.Context, userID string) ([]Record, error) {
	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Reconcile(recs, s.limit), nil
}
