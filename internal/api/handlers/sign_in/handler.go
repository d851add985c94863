package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/service/auth"
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLoginRequired      = "укажите email или телефон"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Handler struct {
	service AuthService
	cookie  SessionCookie
	logger  Logger
}

func NewHandler(service AuthService, cookie SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /signin, /api/signin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /signin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /signin - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	if req.ResolveLogin() == "" {
		h.logger.Warn("POST /signin - Missing login")
		handlers.RespondBadRequest(w, msgLoginRequired)
		return
	}

	sess, err := h.service.SignIn(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /signin - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /signin - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /signin - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.cookie.Set(w, sess.ID, sess.ExpiresAt)

	h.logger.Info("POST /signin - User signed in: user_id=%d", sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, SignInResponse{
		Success: true,
		User:    models.FromSession(sess),
	})
}
