package question

import (
	"context"
	"fmt"

	"github.com/7innovations/fixu/pkg/questionbank"
)

// SeedIfEmpty populates the store with the fixed catalog exactly once.
// If any row already exists for either category the pass performs no
// writes. Store failures are returned to the caller; idempotence makes
// a retry on next startup safe.
func SeedIfEmpty(ctx context.Context, store Store) error {
	n, err := store.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: count questions: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := store.InsertAll(ctx, questionbank.Catalog()); err != nil {
		return fmt.Errorf("seed: insert catalog: %w", err)
	}
	return nil
}
