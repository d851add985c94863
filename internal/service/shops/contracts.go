package shops

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// ShopRepository интерфейс репозитория автомоек
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
}

// EventRecorder счетчик бизнес-событий
type EventRecorder interface {
	Inc(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
