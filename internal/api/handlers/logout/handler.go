package logout

import (
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
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

// Handle POST /logout, /api/logout. Без сессии тоже отвечает 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), h.cookie.Read(r)); err != nil {
		h.logger.Error("POST /logout - Failed to close session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.cookie.Clear(w)

	h.logger.Info("POST /logout - Session closed")
	handlers.RespondOK(w)
}
