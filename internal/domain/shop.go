package domain

// Shop автомойка, зарегистрированная через форму
type Shop struct {
	ID        int64
	ShopName  string
	OwnerName string
	Email     string
	Phone     string
	Address   string
	City      string
	Pincode   string
	Services  string
}
