package auth

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUserExists возвращается, когда email или телефон уже заняты
	ErrUserExists = errors.New("user with this email or phone already exists")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
