package dto

import "plagiarism-detection-be/internal/entity"

type AddFaqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category"`
}

type ListFaqsResponse struct {
	Faqs       []entity.FAQ `json:"faqs"`
	Total      int          `json:"total"`
	Category   string       `json:"category,omitempty"`
	Categories []string     `json:"categories"`
}

type AddFaqResponse struct {
	Message string     `json:"message"`
	Total   int        `json:"total"`
	Faq     entity.FAQ `json:"faq"`
}
