package repositories

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"patient-data-service/internal/storage"
)

// newTestStore opens a throwaway sqlite-backed store with migrations applied.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(sqlite.Open(dbPath), storage.Config{
		MaxConns: 2,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
