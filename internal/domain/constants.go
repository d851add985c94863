package domain

// Ограничения длины полей форм
const (
	MaxNameLength     = 100
	MaxEmailLength    = 254
	MaxPhoneLength    = 32
	MaxPasswordLength = 72 // bcrypt игнорирует байты после 72-го
	MaxStatusLength   = 50
	MaxTextLength     = 2000
)
