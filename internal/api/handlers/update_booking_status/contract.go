package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-CarWash/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, userID, bookingID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
