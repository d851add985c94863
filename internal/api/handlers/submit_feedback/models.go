package submit_feedback

import (
	"github.com/m04kA/SMC-CarWash/internal/service/feedback/models"
)

// SubmitFeedbackRequest HTTP request model; name необязательно
type SubmitFeedbackRequest struct {
	Name   string `json:"name" form:"name" validate:"max=100"`
	Rating int    `json:"rating" form:"rating"`
	Text   string `json:"text" form:"text" validate:"max=2000"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SubmitFeedbackRequest) ToServiceRequest() *models.SubmitRequest {
	return &models.SubmitRequest{
		Name:   r.Name,
		Rating: r.Rating,
		Text:   r.Text,
	}
}
