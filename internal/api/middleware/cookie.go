package middleware

import (
	"net/http"
	"time"
)

// Cookies транспорт id сессии через HttpOnly cookie
type Cookies struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Set выставляет cookie с id сессии
func (c Cookies) Set(w http.ResponseWriter, sessionID string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.TTL > 0 {
		cookie.MaxAge = int(c.TTL.Seconds())
		cookie.Expires = expiresAt
	}
	http.SetCookie(w, cookie)
}

// Clear удаляет cookie у клиента
func (c Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read возвращает id сессии из запроса или пустую строку
func (c Cookies) Read(r *http.Request) string {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
