package question

import (
	"context"
	"errors"
	"testing"

	"github.com/7innovations/fixu/pkg/questionbank"
)

func countAll(t *testing.T, s Store) int {
	t.Helper()
	n := 0
	for _, cat := range questionbank.Categories() {
		qs, err := s.ByCategory(context.Background(), cat)
		if err != nil {
			t.Fatalf("ByCategory(%s): %v", cat, err)
		}
		n += len(qs)
	}
	return n
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	s := NewInMemoryStore()
	for i := 0; i < 4; i++ {
		if err := SeedIfEmpty(context.Background(), s); err != nil {
			t.Fatalf("seed pass %d: %v", i, err)
		}
		if got := countAll(t, s); got != len(questionbank.Catalog()) {
			t.Fatalf("after pass %d store holds %d rows, want %d", i, got, len(questionbank.Catalog()))
		}
	}
}

func TestSeedPreservesBankOrder(t *testing.T) {
	s := NewInMemoryStore()
	if err := SeedIfEmpty(context.Background(), s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, cat := range questionbank.Categories() {
		stored, err := s.ByCategory(context.Background(), cat)
		if err != nil {
			t.Fatalf("ByCategory(%s): %v", cat, err)
		}
		bank := questionbank.Bank(cat)
		if len(stored) != len(bank) {
			t.Fatalf("%s: stored %d questions, want %d", cat, len(stored), len(bank))
		}
		for i := range bank {
			if stored[i].Text != bank[i].Text {
				t.Fatalf("%s question %d is %q, want %q", cat, i, stored[i].Text, bank[i].Text)
			}
		}
	}
}

type failingStore struct{ Store }

var errDiskFull = errors.New("disk full")

func (failingStore) InsertAll(context.Context, []questionbank.Question) error { return errDiskFull }

func TestSeedSurfacesStoreFailure(t *testing.T) {
	s := failingStore{Store: NewInMemoryStore()}
	err := SeedIfEmpty(context.Background(), s)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("err = %v, want wrapped store failure", err)
	}
}
