package sign_up

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
)

type AuthService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
