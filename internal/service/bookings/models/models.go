package models

import (
	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// CreateBookingRequest поля формы бронирования
type CreateBookingRequest struct {
	Name        string
	Phone       string
	Email       string
	CarType     string
	ServiceType string
	Date        string
	Time        string
	Address     string
}

// UpdateStatusRequest запрос на изменение статуса
type UpdateStatusRequest struct {
	Status string
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      *int64 `json:"userId,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	CarType     string `json:"carType"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Address     string `json:"address"`
	Status      string `json:"status"`
}

// CreateBookingResponse ответ на создание бронирования
type CreateBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// ToDomainBooking конвертирует запрос в доменную модель с владельцем и статусом по умолчанию
func (r *CreateBookingRequest) ToDomainBooking(userID int64) *domain.Booking {
	owner := userID
	return &domain.Booking{
		UserID:      &owner,
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		CarType:     r.CarType,
		ServiceType: r.ServiceType,
		Date:        r.Date,
		Time:        r.Time,
		Address:     r.Address,
		Status:      domain.DefaultBookingStatus,
	}
}

// FromDomainBooking конвертирует доменную модель в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		CarType:     b.CarType,
		ServiceType: b.ServiceType,
		Date:        b.Date,
		Time:        b.Time,
		Address:     b.Address,
		Status:      b.Status,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в ответ
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
