package models

import (
	"strings"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// RegisterRequest анкета автомойки
type RegisterRequest struct {
	ShopName  string
	OwnerName string
	Email     string
	Phone     string
	Address   string
	City      string
	Pincode   string
	Services  string
}

// ToDomainShop конвертирует запрос в доменную модель, обрезая пробелы
func (r *RegisterRequest) ToDomainShop() *domain.Shop {
	return &domain.Shop{
		ShopName:  strings.TrimSpace(r.ShopName),
		OwnerName: strings.TrimSpace(r.OwnerName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		Address:   strings.TrimSpace(r.Address),
		City:      strings.TrimSpace(r.City),
		Pincode:   strings.TrimSpace(r.Pincode),
		Services:  strings.TrimSpace(r.Services),
	}
}
