package history

import (
	"context"
	"fmt"
	"testing"
)

func rec(id, createdAt string) Record {
	return Record{ID: id, UserID: "u1", Category: "Student", Status: "No Depression", CreatedAt: createdAt}
}

func ids(recs []Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestReconcileSortsDescendingUnparsableLast(t *testing.T) {
	in := []Record{
		rec("b", "2023-01-02T10:00:00.000Z"),
		rec("a", "2023-01-01T10:00:00.000Z"),
		rec("x", "not-a-date"),
		rec("c", "2023-01-03T10:00:00.000Z"),
	}
	got := ids(Reconcile(in, 5))
	want := []string{"c", "b", "a", "x"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestReconcileTruncatesToMostRecent(t *testing.T) {
	var in []Record
	for d := 1; d <= 8; d++ {
		in = append(in, rec(fmt.Sprintf("r%d", d), fmt.Sprintf("2023-02-%02dT09:30:00.000Z", d)))
	}
	got := Reconcile(in, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	want := []string{"r8", "r7", "r6", "r5", "r4"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestReconcileEmptyStaysEmpty(t *testing.T) {
	if got := Reconcile(nil, 5); len(got) != 0 {
		t.Fatalf("Reconcile(nil) returned %d records", len(got))
	}
	if got := Reconcile([]Record{}, 5); len(got) != 0 {
		t.Fatalf("Reconcile(empty) returned %d records", len(got))
	}
}

func TestReconcileStableForUnparsableTies(t *testing.T) {
	in := []Record{
		rec("x1", "???"),
		rec("x2", "also wrong"),
		rec("ok", "2023-05-01T00:00:00.000Z"),
		rec("x3", ""),
	}
	got := ids(Reconcile(in, 0))
	want := []string{"ok", "x1", "x2", "x3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	in := []Record{
		rec("old", "2023-01-01T00:00:00.000Z"),
		rec("new", "2023-06-01T00:00:00.000Z"),
	}
	_ = Reconcile(in, 1)
	if in[0].ID != "old" || in[1].ID != "new" {
		t.Fatal("Reconcile reordered its input slice")
	}
}

func TestServiceRecentUsesDisplayWindow(t *testing.T) {
	store := NewInMemoryStore()
	for d := 1; d <= 7; d++ {
		r := rec(fmt.Sprintf("r%d", d), fmt.Sprintf("2023-03-%02dT12:00:00.000Z", d))
		if err := store.Insert(context.Background(), r); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	// another user's record must not leak in
	other := rec("other", "2023-03-09T12:00:00.000Z")
	other.UserID = "u2"
	if err := store.Insert(context.Background(), other); err != nil {
		t.Fatalf("insert: %v", err)
	}

	svc := NewService(store, 5)
	got, err := svc.Recent(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("Recent returned %d records, want 5", len(got))
	}
	if got[0].ID != "r7" {
		t.Fatalf("most recent = %s, want r7", got[0].ID)
	}
	if got[4].ID != "r3" {
		t.Fatalf("window tail = %s, want r3", got[4].ID)
	}
}
