package list_feedback

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/service/feedback/models"
)

type FeedbackService interface {
	ListRecent(ctx context.Context) ([]*models.FeedbackResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
