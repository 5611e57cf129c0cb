package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialModel struct {
	TestimonialID uuid.UUID `json:"testimonial_id" gorm:"column:testimonial_id;type:uuid;primaryKey"`

	TestimonialName      string `json:"testimonial_name" gorm:"column:testimonial_name;type:varchar(100);not null"`
	TestimonialRole      string `json:"testimonial_role" gorm:"column:testimonial_role;type:varchar(100);not null"`
	TestimonialQuote     string `json:"testimonial_quote" gorm:"column:testimonial_quote;type:text;not null"`
	TestimonialAvatarURL string `json:"testimonial_avatar_url" gorm:"column:testimonial_avatar_url;type:text"`
	TestimonialRating    int    `json:"testimonial_rating" gorm:"column:testimonial_rating;not null;default:5"`

	TestimonialIsApproved bool `json:"testimonial_is_approved" gorm:"column:testimonial_is_approved;not null;default:false"`
	TestimonialIsFeatured bool `json:"testimonial_is_featured" gorm:"column:testimonial_is_featured;not null;default:false"`

	TestimonialCreatedAt time.Time `json:"testimonial_created_at" gorm:"column:testimonial_created_at;autoCreateTime"`
	TestimonialUpdatedAt time.Time `json:"testimonial_updated_at" gorm:"column:testimonial_updated_at;autoUpdateTime"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == uuid.Nil {
		m.TestimonialID = uuid.New()
	}
	return nil
}
