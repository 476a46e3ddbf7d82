package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/abisgit/pillar-backend/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied, including the template catalog seed. The database is closed when
// the test completes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// Each pooled connection to :memory: would open its own database, so
	// pin the pool to a single connection.
	database.SetMaxOpenConns(1)
	t.Cleanup(func() {
		database.Close()
	})

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}
