package create_booking

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/service/bookings/models"
)

type BookingService interface {
	Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
