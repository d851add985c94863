package sign_up

import (
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
)

// SignUpRequest HTTP request model (JSON или форма)
type SignUpRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=100"`
	Email    string `json:"email" form:"email" validate:"required,max=254"`
	Phone    string `json:"phone" form:"phone" validate:"required,max=32"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SignUpRequest) ToServiceRequest() *models.SignUpRequest {
	return &models.SignUpRequest{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}
