package bookings

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	UpdateStatusByOwner(ctx context.Context, id, userID int64, status string) error
	DeleteByOwner(ctx context.Context, id, userID int64) error
}

// EventRecorder счетчик бизнес-событий
type EventRecorder interface {
	Inc(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
