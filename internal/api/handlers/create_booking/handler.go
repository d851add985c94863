package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAuthRequired       = "требуется вход в аккаунт"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /book, /booking, /api/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking - Unauthenticated request")
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /booking - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), userID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /booking - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgAuthRequired)

		default:
			h.logger.Error("POST /booking - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking - Booking created successfully: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondCreated(w, result.ID)
}
