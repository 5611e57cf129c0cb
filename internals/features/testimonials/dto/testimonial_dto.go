package dto

import (
	"strings"
	"time"

	"riseacademy_backend/internals/features/testimonials/model"
)

type CreateTestimonialRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Role       string `json:"role" validate:"required,min=2,max=100"`
	Quote      string `json:"quote" validate:"required,min=10"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,max=2048"`
	Rating     int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsApproved bool   `json:"is_approved"`
	IsFeatured bool   `json:"is_featured"`
}

func (r *CreateTestimonialRequest) ToModel() *model.TestimonialModel {
	rating := r.Rating
	if rating == 0 {
		rating = 5
	}
	return &model.TestimonialModel{
		TestimonialName:       strings.TrimSpace(r.Name),
		TestimonialRole:       strings.TrimSpace(r.Role),
		TestimonialQuote:      strings.TrimSpace(r.Quote),
		TestimonialAvatarURL:  strings.TrimSpace(r.AvatarURL),
		TestimonialRating:     rating,
		TestimonialIsApproved: r.IsApproved,
		TestimonialIsFeatured: r.IsFeatured,
	}
}

type UpdateTestimonialRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	Role       *string `json:"role" validate:"omitempty,min=2,max=100"`
	Quote      *string `json:"quote" validate:"omitempty,min=10"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,max=2048"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsApproved *bool   `json:"is_approved"`
	IsFeatured *bool   `json:"is_featured"`
}

func (r *UpdateTestimonialRequest) ApplyToModel(m *model.TestimonialModel) {
	if r.Name != nil {
		m.TestimonialName = strings.TrimSpace(*r.Name)
	}
	if r.Role != nil {
		m.TestimonialRole = strings.TrimSpace(*r.Role)
	}
	if r.Quote != nil {
		m.TestimonialQuote = strings.TrimSpace(*r.Quote)
	}
	if r.AvatarURL != nil {
		m.TestimonialAvatarURL = strings.TrimSpace(*r.AvatarURL)
	}
	if r.Rating != nil {
		m.TestimonialRating = *r.Rating
	}
	if r.IsApproved != nil {
		m.TestimonialIsApproved = *r.IsApproved
	}
	if r.IsFeatured != nil {
		m.TestimonialIsFeatured = *r.IsFeatured
	}
}

type TestimonialResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Quote      string    `json:"quote"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Rating     int       `json:"rating"`
	IsApproved bool      `json:"is_approved"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTestimonialResponse(m *model.TestimonialModel) TestimonialResponse {
	return TestimonialResponse{
		ID:         m.TestimonialID.String(),
		Name:       m.TestimonialName,
		Role:       m.TestimonialRole,
		Quote:      m.TestimonialQuote,
		AvatarURL:  m.TestimonialAvatarURL,
		Rating:     m.TestimonialRating,
		IsApproved: m.TestimonialIsApproved,
		IsFeatured: m.TestimonialIsFeatured,
		CreatedAt:  m.TestimonialCreatedAt,
		UpdatedAt:  m.TestimonialUpdatedAt,
	}
}

func ToTestimonialResponses(list []model.TestimonialModel) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(list))
	for i := range list {
		out = append(out, ToTestimonialResponse(&list[i]))
	}
	return out
}
