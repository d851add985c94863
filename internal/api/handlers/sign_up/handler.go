package sign_up

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserExists         = "пользователь с таким email или телефоном уже существует"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /signup, /api/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /signup - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	resp, err := h.service.SignUp(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, auth.ErrUserExists):
			h.logger.Warn("POST /signup - User already exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgUserExists)

		default:
			h.logger.Error("POST /signup - Failed to sign up: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /signup - User registered: user_id=%d", resp.ID)
	handlers.RespondCreated(w, resp.ID)
}
