package domain

// DefaultBookingStatus статус, с которым создается каждое бронирование
const DefaultBookingStatus = "Pending"

// Booking заявка на мойку.
// Дата и время хранятся в том виде, в котором их прислал клиент.
type Booking struct {
	ID          int64
	UserID      *int64 // владелец; nil для заявок, созданных до появления аккаунтов
	Name        string
	Phone       string
	Email       string
	CarType     string
	ServiceType string
	Date        string
	Time        string
	Address     string
	Status      string
}

// IsOwnedBy true, если бронирование принадлежит пользователю
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}
