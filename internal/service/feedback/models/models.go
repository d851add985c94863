package models

import "github.com/m04kA/SMC-CarWash/internal/domain"

// SubmitRequest отзыв из формы
type SubmitRequest struct {
	Name   string
	Rating int
	Text   string
}

// FeedbackResponse отзыв в ответе
type FeedbackResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	TS     int64  `json:"ts"`
}

// FromDomainFeedback конвертирует доменную модель в ответ
func FromDomainFeedback(fb *domain.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:     fb.ID,
		Name:   fb.Name,
		Rating: fb.Rating,
		Text:   fb.Text,
		TS:     fb.CreatedAt,
	}
}

// FromDomainFeedbackList конвертирует список отзывов
func FromDomainFeedbackList(items []*domain.Feedback) []*FeedbackResponse {
	result := make([]*FeedbackResponse, 0, len(items))
	for _, fb := range items {
		result = append(result, FromDomainFeedback(fb))
	}
	return result
}
