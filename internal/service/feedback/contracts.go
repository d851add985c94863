package feedback

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// FeedbackRepository интерфейс репозитория отзывов
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Feedback, error)
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
