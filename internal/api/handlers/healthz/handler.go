package healthz

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
)

const (
	pingTimeout = 2 * time.Second

	msgDatabaseUnavailable = "база данных недоступна"
)

// StatusResponse ответ проверки здоровья
type StatusResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type Handler struct {
	db      Pinger
	backend string
	logger  Logger
}

func NewHandler(db Pinger, backend string, logger Logger) *Handler {
	return &Handler{
		db:      db,
		backend: backend,
		logger:  logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /healthz - Database ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgDatabaseUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok", Backend: h.backend})
}
