package submit_feedback

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/service/feedback/models"
)

type FeedbackService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
