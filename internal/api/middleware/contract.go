package middleware

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// SessionReader читает сессию по id из cookie
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
