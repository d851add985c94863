// Package dbtest поднимает временную SQLite базу со схемой сервиса для тестов репозиториев.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWash/internal/config"
	"github.com/m04kA/SMC-CarWash/internal/infra/database"
)

// Open создает базу в t.TempDir() и закрывает её по окончании теста
func Open(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "carwash.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}
