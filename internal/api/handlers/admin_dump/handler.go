package admin_dump

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/service/admin"
)

const (
	msgAuthRequired = "требуется вход в аккаунт"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /admin/db, /api/admin/db
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dump, err := h.service.Dump(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("GET /admin/db - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, admin.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/db - Failed to dump database: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dump)
}
