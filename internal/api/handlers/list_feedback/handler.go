package list_feedback

import (
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
)

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /feedback, /feedbacks, /api/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListRecent(r.Context())
	if err != nil {
		h.logger.Error("GET /feedback - Failed to list feedback: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
