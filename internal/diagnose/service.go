package diagnose

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/7innovations/fixu/internal/history"
	"github.com/7innovations/fixu/pkg/questionbank"
)

const (
	StatusDepression   = "Depression"
	StatusNoDepression = "No Depression"

	// riskThreshold splits the scorer's probability into the two
	// statuses the app displays.
	riskThreshold = 0.5
)

type Service struct {
	results history.Store
	scorer  *Scorer
	now     func() time.Time
	newID   func() string
}

func NewService(results history.Store) *Service {
	return &Service{
		results: results,
		scorer:  NewScorer(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   defaultResultID,
	}
}

func defaultResultID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Predict validates the submission against its category's bank, scores
// it, persists the outcome, and returns it. Validation failures are
// returned before anything is stored.
func (s *Service) Predict(ctx context.Context, userID string, sub questionbank.Submission) (history.Record, error) {
	answers := make(map[string]string, len(sub.Answers))
	for _, a := range sub.Answers {
		answers[a.Question] = a.Value
	}
	collected, err := questionbank.Collect(sub.Category, answers)
	if err != nil {
		return history.Record{}, err
	}

	p := s.scorer.Probability(collected)
	rec := history.Record{
		ID:          s.newID(),
		UserID:      userID,
		Category:    string(sub.Category),
		Probability: p,
		CreatedAt:   s.now().Format(history.TimeLayout),
	}
	if p >= riskThreshold {
		rec.Status = StatusDepression
		rec.Feedback = "Your answers show signs of depression. Please consider talking to a mental health professional."
	} else {
		rec.Status = StatusNoDepression
		rec.Feedback = "Your answers show no strong signs of depression. Keep taking care of yourself."
	}

	if err := s.results.Insert(ctx, rec); err != nil {
		return history.Record{}, fmt.Errorf("store result: %w", err)
	}
	return rec, nil
}
