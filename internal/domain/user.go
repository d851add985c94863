package domain

// User зарегистрированный посетитель. Email и телефон уникальны.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
}
