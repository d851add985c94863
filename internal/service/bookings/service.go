package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CarWash/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CarWash/internal/service/bookings/models"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

// Service сервис для работы с бронированиями.
// Все операции выполняются от имени владельца (userID из сессии).
type Service struct {
	bookingRepo BookingRepository
	events      EventRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, events EventRecorder, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		events:      events,
		logger:      logger,
	}
}

// Create создает бронирование со статусом "Pending", привязанное к пользователю
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	normalized := normalize(req)
	if err := validateCreate(normalized); err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", userID, err)
		return nil, err
	}

	s.logger.Info("Create: user=%d, service=%s, date=%s, time=%s",
		userID, normalized.ServiceType, normalized.Date, normalized.Time)

	booking, err := s.bookingRepo.Create(ctx, normalized.ToDomainBooking(userID))
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventBookingCreated)
	s.logger.Info("Create: booking id=%d created for user=%d", booking.ID, userID)
	return &models.CreateBookingResponse{ID: booking.ID, Status: booking.Status}, nil
}

// GetUserBookings возвращает бронирования пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel удаляет бронирование владельца.
// Чужое бронирование неотличимо от несуществующего: в обоих случаях ErrBookingNotFound.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	s.logger.Info("Cancel: deleting booking id=%d by user=%d", bookingID, userID)

	if err := s.bookingRepo.DeleteByOwner(ctx, bookingID, userID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found for user=%d", bookingID, userID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventBookingCancelled)
	s.logger.Info("Cancel: booking id=%d deleted", bookingID)
	return nil
}

// UpdateStatus меняет статус бронирования владельца; статус - произвольный непустой текст
func (s *Service) UpdateStatus(ctx context.Context, userID, bookingID int64, req *models.UpdateStatusRequest) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		s.logger.Warn("UpdateStatus: empty status for booking id=%d", bookingID)
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	if len(status) > domain.MaxStatusLength {
		return fmt.Errorf("%w: status is longer than %d characters", ErrInvalidInput, domain.MaxStatusLength)
	}

	s.logger.Info("UpdateStatus: booking id=%d to status=%s by user=%d", bookingID, status, userID)

	if err := s.bookingRepo.UpdateStatusByOwner(ctx, bookingID, userID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found for user=%d", bookingID, userID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.events.Inc(metrics.EventBookingStatus)
	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, status)
	return nil
}

func normalize(req *models.CreateBookingRequest) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		CarType:     strings.TrimSpace(req.CarType),
		ServiceType: strings.TrimSpace(req.ServiceType),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Address:     strings.TrimSpace(req.Address),
	}
}

func validateCreate(req *models.CreateBookingRequest) error {
	missing := make([]string, 0)
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.ServiceType == "" {
		missing = append(missing, "serviceType")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
