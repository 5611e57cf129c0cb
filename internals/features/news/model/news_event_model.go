package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsEventModel struct {
	NewsEventID uuid.UUID `json:"news_event_id" gorm:"column:news_event_id;type:uuid;primaryKey"`

	NewsEventTitle    string `json:"news_event_title" gorm:"column:news_event_title;type:varchar(255);not null"`
	NewsEventExcerpt  string `json:"news_event_excerpt" gorm:"column:news_event_excerpt;type:text"`
	NewsEventContent  string `json:"news_event_content" gorm:"column:news_event_content;type:text"`
	NewsEventCategory string `json:"news_event_category" gorm:"column:news_event_category;type:varchar(20);not null;default:news"`
	NewsEventImageURL string `json:"news_event_image_url" gorm:"column:news_event_image_url;type:text"`

	NewsEventIsPublished bool       `json:"news_event_is_published" gorm:"column:news_event_is_published;not null;default:false"`
	NewsEventPublishedAt *time.Time `json:"news_event_published_at" gorm:"column:news_event_published_at"`

	// Only meaningful when category is event; cleared on save otherwise.
	NewsEventEventDate     *time.Time `json:"news_event_event_date" gorm:"column:news_event_event_date"`
	NewsEventEventTime     string     `json:"news_event_event_time" gorm:"column:news_event_event_time;type:varchar(50)"`
	NewsEventEventLocation string     `json:"news_event_event_location" gorm:"column:news_event_event_location;type:varchar(255)"`

	NewsEventCreatedAt time.Time `json:"news_event_created_at" gorm:"column:news_event_created_at;autoCreateTime"`
	NewsEventUpdatedAt time.Time `json:"news_event_updated_at" gorm:"column:news_event_updated_at;autoUpdateTime"`
}

func (NewsEventModel) TableName() string {
	return "news_events"
}

func (m *NewsEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.NewsEventID == uuid.Nil {
		m.NewsEventID = uuid.New()
	}
	return nil
}
