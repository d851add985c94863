package logout

import (
	"context"
	"net/http"
)

type AuthService interface {
	Logout(ctx context.Context, sessionID string) error
}

// SessionCookie читает и сбрасывает cookie сессии
type SessionCookie interface {
	Read(r *http.Request) string
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
