package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибках внешнего хранилища
	ErrStore = errors.New("session.store: storage error")
)
