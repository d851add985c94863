package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-CarWash/internal/config"
)

// sqlitePragmas включают внешние ключи (ON DELETE CASCADE) и ожидание блокировки файла
const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// DB пул соединений вместе с выбранным движком
type DB struct {
	*sql.DB
	Backend Backend
}

// SelectBackend выбирает движок по конфигурации: строка подключения -> PostgreSQL, иначе SQLite
func SelectBackend(cfg config.DatabaseConfig) Backend {
	if cfg.IsHosted() {
		return Postgres{}
	}
	return SQLite{}
}

// DSN строка подключения для выбранного движка
func DSN(cfg config.DatabaseConfig) string {
	if cfg.IsHosted() {
		return cfg.URL
	}
	return "file:" + cfg.Path + sqlitePragmas
}

// Open открывает пул, проверяет соединение и создает таблицы
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	backend := SelectBackend(cfg)

	if !cfg.IsHosted() {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%w: create directory %s: %v", ErrConnection, dir, err)
			}
		}
	}

	sqlDB, err := sql.Open(backend.DriverName(), DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrConnection, backend.Name(), err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrConnection, backend.Name(), err)
	}

	db := &DB{DB: sqlDB, Backend: backend}
	if err := db.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Migrate применяет схему движка. Выражения идемпотентны.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range db.Backend.Schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMigration, db.Backend.Name(), err)
		}
	}
	return nil
}
