package database

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLite локальная файловая база (драйвер modernc.org/sqlite, без cgo)
type SQLite struct{}

var _ Backend = SQLite{}

func (SQLite) Name() string       { return "sqlite" }
func (SQLite) DriverName() string { return "sqlite" }

func (SQLite) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (SQLite) IsUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
		return true
	}
	// без extended result codes драйвер отдает только первичный код
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}

func (SQLite) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id      INTEGER REFERENCES users(id) ON DELETE CASCADE,
			name         TEXT NOT NULL,
			phone        TEXT NOT NULL,
			email        TEXT NOT NULL DEFAULT '',
			car_type     TEXT NOT NULL DEFAULT '',
			service_type TEXT NOT NULL,
			booking_date TEXT NOT NULL,
			booking_time TEXT NOT NULL,
			address      TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT 'Pending',
			created_at   TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			name   TEXT NOT NULL DEFAULT 'Anonymous',
			rating INTEGER NOT NULL,
			text   TEXT NOT NULL DEFAULT '',
			ts     INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS shops (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			shop_name  TEXT NOT NULL,
			owner_name TEXT NOT NULL,
			email      TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL,
			address    TEXT NOT NULL DEFAULT '',
			city       TEXT NOT NULL DEFAULT '',
			pincode    TEXT NOT NULL DEFAULT '',
			services   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
}
