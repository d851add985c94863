package submit_feedback

import (
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /feedback, /api/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /feedback - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	id, err := h.service.Submit(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /feedback - Failed to save feedback: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /feedback - Feedback saved: feedback_id=%d", id)
	handlers.RespondCreated(w, id)
}
