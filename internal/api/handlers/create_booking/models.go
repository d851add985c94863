package create_booking

import (
	"github.com/m04kA/SMC-CarWash/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model.
// Service - старое имя поля serviceType, принимается для совместимости со старой формой.
type CreateBookingRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Phone       string `json:"phone" form:"phone" validate:"required,max=32"`
	Email       string `json:"email" form:"email" validate:"max=254"`
	CarType     string `json:"carType" form:"carType" validate:"max=100"`
	ServiceType string `json:"serviceType" form:"serviceType" validate:"required_without=Service,max=100"`
	Service     string `json:"service" form:"service" validate:"max=100"`
	Date        string `json:"date" form:"date" validate:"required"`
	Time        string `json:"time" form:"time" validate:"required"`
	Address     string `json:"address" form:"address" validate:"max=2000"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest() *models.CreateBookingRequest {
	serviceType := r.ServiceType
	if serviceType == "" {
		serviceType = r.Service
	}

	return &models.CreateBookingRequest{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		CarType:     r.CarType,
		ServiceType: serviceType,
		Date:        r.Date,
		Time:        r.Time,
		Address:     r.Address,
	}
}
