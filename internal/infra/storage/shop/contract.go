package shop

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWash/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Dialect построитель запросов выбранного движка
type Dialect interface {
	Builder() squirrel.StatementBuilderType
}
