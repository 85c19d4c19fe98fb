package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), "file::memory:")
	require.NoError(t, err)
	return conn.DB
}

// NewVocabDir returns an empty vocabulary directory removed after the test.
func NewVocabDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
