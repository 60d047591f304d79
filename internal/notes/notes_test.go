package notes

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func testService() *Service {
	svc := NewService(NewInMemoryStore())
	seq := 0
	base := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	svc.newID = func() string { seq++; return fmt.Sprintf("n%d", seq) }
	svc.now = func() time.Time { base = base.Add(time.Hour); return base }
	return svc
}

func TestAddAndListNewestFirst(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if _, err := svc.Add(ctx, "u1", fmt.Sprintf("title %d", i), "body"); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if _, err := svc.Add(ctx, "u2", "someone else", "body"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List returned %d notes, want 3", len(got))
	}
	if got[0].Title != "title 3" || got[2].Title != "title 1" {
		t.Fatalf("notes not newest-first: %+v", got)
	}
}

func TestAddRequiresTitleAndContent(t *testing.T) {
	svc := testService()
	if _, err := svc.Add(context.Background(), "u1", "  ", "body"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	if _, err := svc.Add(context.Background(), "u1", "title", ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc := testService()
	ctx := context.Background()
	n, err := svc.Add(ctx, "u1", "old title", "old content")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	title := "new title"
	got, err := svc.Update(ctx, "u1", n.ID, Patch{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "new title" || got.Content != "old content" {
		t.Fatalf("partial update produced %+v", got)
	}
	if got.UpdatedAt == "" {
		t.Fatal("UpdatedAt not set")
	}
}

func TestOwnershipEnforced(t *testing.T) {
	svc := testService()
	ctx := context.Background()
	n, err := svc.Add(ctx, "u1", "mine", "secret")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := svc.Update(ctx, "intruder", n.ID, Patch{}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Update err = %v, want ErrNotOwner", err)
	}
	if err := svc.Delete(ctx, "intruder", n.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Delete err = %v, want ErrNotOwner", err)
	}
	if err := svc.Delete(ctx, "u1", n.ID); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}
	if err := svc.Delete(ctx, "u1", n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}
