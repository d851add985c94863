package sign_in

import (
	"strings"

	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
)

// SignInRequest HTTP request model.
// Логин можно передать в login, email или phone.
type SignInRequest struct {
	Login    string `json:"login" form:"login"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignInResponse HTTP response model
type SignInResponse struct {
	Success bool                 `json:"success"`
	User    *models.UserResponse `json:"user"`
}

// ResolveLogin первый непустой из login, email, phone
func (r *SignInRequest) ResolveLogin() string {
	for _, v := range []string{r.Login, r.Email, r.Phone} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SignInRequest) ToServiceRequest() *models.SignInRequest {
	return &models.SignInRequest{
		Login:    r.ResolveLogin(),
		Password: r.Password,
	}
}
