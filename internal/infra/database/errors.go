package database

import "errors"

var (
	// ErrConnection возвращается, когда хранилище недоступно
	ErrConnection = errors.New("database: connection error")

	// ErrMigration возвращается при ошибке создания схемы
	ErrMigration = errors.New("database: failed to apply schema")
)
