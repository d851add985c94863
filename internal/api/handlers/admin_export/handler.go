package admin_export

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/service/admin"
)

const (
	msgAuthRequired = "требуется вход в аккаунт"
	msgForbidden    = "доступ запрещен"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service AdminService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/admin/export
// Книга пишется в буфер: статус 200 отправляется только после успешной сборки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer

	err := h.service.Export(r.Context(), middleware.GetSession(r.Context()), &buf)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("GET /admin/export - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, admin.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/export - Failed to export database: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("carwash-%s.xlsx", h.now().Format("20060102-150405"))

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/export - Failed to write response: %v", err)
	}
}
