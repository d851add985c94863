package sign_in

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
)

type AuthService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*domain.Session, error)
}

// SessionCookie выставляет cookie с id сессии
type SessionCookie interface {
	Set(w http.ResponseWriter, sessionID string, expiresAt time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
