package register_shop

import (
	"github.com/m04kA/SMC-CarWash/internal/service/shops/models"
)

// RegisterShopRequest HTTP request model
type RegisterShopRequest struct {
	ShopName  string `json:"shopName" form:"shopName" validate:"required,max=100"`
	OwnerName string `json:"ownerName" form:"ownerName" validate:"required,max=100"`
	Email     string `json:"email" form:"email" validate:"max=254"`
	Phone     string `json:"phone" form:"phone" validate:"required,max=32"`
	Address   string `json:"address" form:"address" validate:"max=2000"`
	City      string `json:"city" form:"city" validate:"max=100"`
	Pincode   string `json:"pincode" form:"pincode" validate:"max=20"`
	Services  string `json:"services" form:"services" validate:"max=2000"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RegisterShopRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		ShopName:  r.ShopName,
		OwnerName: r.OwnerName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		Pincode:   r.Pincode,
		Services:  r.Services,
	}
}
