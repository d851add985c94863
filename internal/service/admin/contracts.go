package admin

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// UserRepository чтение всех пользователей (без хешей паролей)
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
}

// BookingRepository чтение всех бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// FeedbackRepository чтение всех отзывов
type FeedbackRepository interface {
	List(ctx context.Context) ([]*domain.Feedback, error)
}

// ShopRepository чтение всех автомоек
type ShopRepository interface {
	List(ctx context.Context) ([]*domain.Shop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
