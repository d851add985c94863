package models

import (
	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// SignUpRequest запрос на регистрацию
type SignUpRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// SignUpResponse результат регистрации
type SignUpResponse struct {
	ID int64 `json:"id"`
}

// SignInRequest запрос на вход; Login сравнивается и с email, и с телефоном
type SignInRequest struct {
	Login    string
	Password string
}

// UserResponse публичные поля пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SessionResponse состояние сессии для GET /api/session
type SessionResponse struct {
	IsLoggedIn bool          `json:"isLoggedIn"`
	User       *UserResponse `json:"user,omitempty"`
}

// FromSession публичные поля пользователя из сессии
func FromSession(s *domain.Session) *UserResponse {
	if s == nil {
		return nil
	}
	return &UserResponse{
		ID:    s.UserID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	}
}

// NewSessionResponse формирует ответ GET /api/session
func NewSessionResponse(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		IsLoggedIn: s != nil,
		User:       FromSession(s),
	}
}
