package models

import "github.com/m04kA/SMC-CarWash/internal/domain"

// UserRow пользователь в дампе
type UserRow struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingRow бронирование в дампе
type BookingRow struct {
	ID          int64  `json:"id"`
	UserID      *int64 `json:"userId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	CarType     string `json:"carType"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Address     string `json:"address"`
	Status      string `json:"status"`
}

// FeedbackRow отзыв в дампе
type FeedbackRow struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	TS     int64  `json:"ts"`
}

// ShopRow автомойка в дампе
type ShopRow struct {
	ID        int64  `json:"id"`
	ShopName  string `json:"shopName"`
	OwnerName string `json:"ownerName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	Services  string `json:"services"`
}

// DumpResponse содержимое всех таблиц
type DumpResponse struct {
	Users    []*UserRow     `json:"users"`
	Bookings []*BookingRow  `json:"bookings"`
	Feedback []*FeedbackRow `json:"feedback"`
	Shops    []*ShopRow     `json:"shops"`
}

// NewDumpResponse собирает дамп из доменных моделей
func NewDumpResponse(users []*domain.User, bookings []*domain.Booking, feedback []*domain.Feedback, shops []*domain.Shop) *DumpResponse {
	resp := &DumpResponse{
		Users:    make([]*UserRow, 0, len(users)),
		Bookings: make([]*BookingRow, 0, len(bookings)),
		Feedback: make([]*FeedbackRow, 0, len(feedback)),
		Shops:    make([]*ShopRow, 0, len(shops)),
	}

	for _, u := range users {
		resp.Users = append(resp.Users, &UserRow{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone})
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, &BookingRow{
			ID:          b.ID,
			UserID:      b.UserID,
			Name:        b.Name,
			Phone:       b.Phone,
			Email:       b.Email,
			CarType:     b.CarType,
			ServiceType: b.ServiceType,
			Date:        b.Date,
			Time:        b.Time,
			Address:     b.Address,
			Status:      b.Status,
		})
	}
	for _, fb := range feedback {
		resp.Feedback = append(resp.Feedback, &FeedbackRow{
			ID: fb.ID, Name: fb.Name, Rating: fb.Rating, Text: fb.Text, TS: fb.CreatedAt,
		})
	}
	for _, s := range shops {
		resp.Shops = append(resp.Shops, &ShopRow{
			ID:        s.ID,
			ShopName:  s.ShopName,
			OwnerName: s.OwnerName,
			Email:     s.Email,
			Phone:     s.Phone,
			Address:   s.Address,
			City:      s.City,
			Pincode:   s.Pincode,
			Services:  s.Services,
		})
	}

	return resp
}
