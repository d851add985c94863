package database

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// pqUniqueViolation код ошибки PostgreSQL unique_violation
const pqUniqueViolation pq.ErrorCode = "23505"

// Postgres размещенный сервер PostgreSQL (драйвер lib/pq)
type Postgres struct{}

var _ Backend = Postgres{}

func (Postgres) Name() string       { return "postgres" }
func (Postgres) DriverName() string { return "postgres" }

func (Postgres) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (Postgres) IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func (Postgres) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            SERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id           SERIAL PRIMARY KEY,
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
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id     SERIAL PRIMARY KEY,
			name   TEXT NOT NULL DEFAULT 'Anonymous',
			rating INTEGER NOT NULL,
			text   TEXT NOT NULL DEFAULT '',
			ts     BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS shops (
			id         SERIAL PRIMARY KEY,
			shop_name  TEXT NOT NULL,
			owner_name TEXT NOT NULL,
			email      TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL,
			address    TEXT NOT NULL DEFAULT '',
			city       TEXT NOT NULL DEFAULT '',
			pincode    TEXT NOT NULL DEFAULT '',
			services   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
}
