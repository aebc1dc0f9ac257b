// Package testutil provides SQLite test helpers
package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTestHelper opens a second connection to a test database so tests
// can assert on raw rows behind a store's back.
type SQLiteTestHelper struct {
	DB     *sql.DB
	DBPath string
}

// NewSQLiteTestHelper creates a temp database path and opens it
func NewSQLiteTestHelper(t *testing.T) *SQLiteTestHelper {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return &SQLiteTestHelper{DB: db, DBPath: dbPath}
}

// Count returns the count of rows in a table
func (h *SQLiteTestHelper) Count(t *testing.T, table string) int {
	var count int
	err := h.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	return count
}

// RowExists checks if a row exists
func (h *SQLiteTestHelper) RowExists(t *testing.T, table string, where string, args ...interface{}) bool {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where)
	err := h.DB.QueryRow(query, args...).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	return count > 0
}
