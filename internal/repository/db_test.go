package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

// newTestDB opens a throwaway database file and applies migrations.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := NewDB("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() unexpected error: %v", err)
	}

	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() second run unexpected error: %v", err)
	}
}
