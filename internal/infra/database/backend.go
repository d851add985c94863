package database

import (
	"github.com/Masterminds/squirrel"
)

// Backend возможности конкретного SQL-движка.
// Выбирается один раз при старте, дальше репозитории работают с ним одинаково.
type Backend interface {
	// Name человекочитаемое имя движка для логов
	Name() string
	// DriverName имя драйвера для sql.Open
	DriverName() string
	// Builder squirrel builder с нужным форматом плейсхолдеров
	Builder() squirrel.StatementBuilderType
	// Schema DDL-выражения, создающие таблицы (идемпотентно)
	Schema() []string
	// IsUniqueViolation true, если ошибка - нарушение уникального ограничения
	IsUniqueViolation(err error) bool
}
