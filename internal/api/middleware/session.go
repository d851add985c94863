package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/auth"
)

type contextKey string

const sessionKey contextKey = "session"

const msgAuthRequired = "требуется вход в аккаунт"

// Session загружает сессию по cookie и кладет её в контекст.
// Запрос без cookie или с устаревшей cookie проходит дальше анонимным.
func Session(reader SessionReader, cookies Cookies, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := cookies.Read(r)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := reader.GetSession(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, auth.ErrSessionNotFound) {
					cookies.Clear(w)
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("%s %s - Failed to load session: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireSession отвечает 401, если в контексте нет сессии
func RequireSession(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetSession(r.Context()) == nil {
				logger.Warn("%s %s - Unauthenticated request", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession возвращает сессию из контекста или nil
func GetSession(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionKey).(*domain.Session)
	return sess
}

// GetUserID возвращает id пользователя из сессии в контексте
func GetUserID(ctx context.Context) (int64, bool) {
	sess := GetSession(ctx)
	if sess == nil {
		return 0, false
	}
	return sess.UserID, true
}
