package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenSQLiteAppliesSchema(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "fixu.db")
	h, err := Open(context.Background(), DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	for _, table := range []string{"users", "questions", "results", "notes"} {
		var n int
		if err := h.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
		if n != 0 {
			t.Fatalf("fresh table %s holds %d rows", table, n)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Driver("oracle"), ""); err == nil {
		t.Fatal("Open accepted an unknown driver")
	}
}

func TestOpenFailsCleanlyWhenUnreachable(t *testing.T) {
	dsn := "postgres://127.0.0.1:1/fixu?sslmode=disable&connect_timeout=1"
	if _, err := Open(context.Background(), DriverPostgres, dsn); err == nil {
		t.Fatal("Open reached a server on a closed port")
	}
}
