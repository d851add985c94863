package admin

import "errors"

var (
	// ErrUnauthorized возвращается, когда запрос пришел без сессии
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden возвращается, когда пользователь не входит в список администраторов
	ErrForbidden = errors.New("admin access required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
