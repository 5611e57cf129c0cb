package dto

import (
	"strings"
	"time"

	"riseacademy_backend/internals/constants"
	"riseacademy_backend/internals/features/news/model"
)

type CreateNewsEventRequest struct {
	Title         string `json:"title" validate:"required,min=2,max=255"`
	Excerpt       string `json:"excerpt" validate:"omitempty,max=1000"`
	Content       string `json:"content" validate:"omitempty"`
	Category      string `json:"category" validate:"required,oneof=news event announcement"`
	ImageURL      string `json:"image_url" validate:"omitempty,max=2048"`
	IsPublished   bool   `json:"is_published"`
	EventDate     string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime     string `json:"event_time" validate:"omitempty,max=50"`
	EventLocation string `json:"event_location" validate:"omitempty,max=255"`
}

func (r *CreateNewsEventRequest) ToModel() *model.NewsEventModel {
	m := &model.NewsEventModel{
		NewsEventTitle:         strings.TrimSpace(r.Title),
		NewsEventExcerpt:       strings.TrimSpace(r.Excerpt),
		NewsEventContent:       r.Content,
		NewsEventCategory:      r.Category,
		NewsEventImageURL:      strings.TrimSpace(r.ImageURL),
		NewsEventIsPublished:   r.IsPublished,
		NewsEventEventTime:     strings.TrimSpace(r.EventTime),
		NewsEventEventLocation: strings.TrimSpace(r.EventLocation),
	}
	if r.EventDate != "" {
		if d, err := time.Parse("2006-01-02", r.EventDate); err == nil {
			m.NewsEventEventDate = &d
		}
	}
	ApplySaveSemantics(m)
	return m
}

type UpdateNewsEventRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=2,max=255"`
	Excerpt       *string `json:"excerpt" validate:"omitempty,max=1000"`
	Content       *string `json:"content"`
	Category      *string `json:"category" validate:"omitempty,oneof=news event announcement"`
	ImageURL      *string `json:"image_url" validate:"omitempty,max=2048"`
	IsPublished   *bool   `json:"is_published"`
	EventDate     *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime     *string `json:"event_time" validate:"omitempty,max=50"`
	EventLocation *string `json:"event_location" validate:"omitempty,max=255"`
}

// ApplyToModel merges the partial update, then re-derives the publish
// timestamp and event fields.
func (r *UpdateNewsEventRequest) ApplyToModel(m *model.NewsEventModel) {
	if r.Title != nil {
		m.NewsEventTitle = strings.TrimSpace(*r.Title)
	}
	if r.Excerpt != nil {
		m.NewsEventExcerpt = strings.TrimSpace(*r.Excerpt)
	}
	if r.Content != nil {
		m.NewsEventContent = *r.Content
	}
	if r.Category != nil {
		m.NewsEventCategory = *r.Category
	}
	if r.ImageURL != nil {
		m.NewsEventImageURL = strings.TrimSpace(*r.ImageURL)
	}
	if r.IsPublished != nil {
		m.NewsEventIsPublished = *r.IsPublished
	}
	if r.EventDate != nil {
		if *r.EventDate == "" {
			m.NewsEventEventDate = nil
		} else if d, err := time.Parse("2006-01-02", *r.EventDate); err == nil {
			m.NewsEventEventDate = &d
		}
	}
	if r.EventTime != nil {
		m.NewsEventEventTime = strings.TrimSpace(*r.EventTime)
	}
	if r.EventLocation != nil {
		m.NewsEventEventLocation = strings.TrimSpace(*r.EventLocation)
	}
	ApplySaveSemantics(m)
}

// ApplySaveSemantics enforces the two save-time rules:
// a published save stamps published_at with the save time, an unpublished
// save clears it; event fields survive only on category event.
func ApplySaveSemantics(m *model.NewsEventModel) {
	if m.NewsEventIsPublished {
		now := time.Now()
		m.NewsEventPublishedAt = &now
	} else {
		m.NewsEventPublishedAt = nil
	}
	if m.NewsEventCategory != constants.CategoryEvent {
		m.NewsEventEventDate = nil
		m.NewsEventEventTime = ""
		m.NewsEventEventLocation = ""
	}
}

type NewsEventResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content,omitempty"`
	Category      string     `json:"category"`
	ImageURL      string     `json:"image_url,omitempty"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"`
	EventDate     *string    `json:"event_date"`
	EventTime     string     `json:"event_time,omitempty"`
	EventLocation string     `json:"event_location,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToNewsEventResponse(m *model.NewsEventModel) NewsEventResponse {
	resp := NewsEventResponse{
		ID:            m.NewsEventID.String(),
		Title:         m.NewsEventTitle,
		Excerpt:       m.NewsEventExcerpt,
		Content:       m.NewsEventContent,
		Category:      m.NewsEventCategory,
		ImageURL:      m.NewsEventImageURL,
		IsPublished:   m.NewsEventIsPublished,
		PublishedAt:   m.NewsEventPublishedAt,
		EventTime:     m.NewsEventEventTime,
		EventLocation: m.NewsEventEventLocation,
		CreatedAt:     m.NewsEventCreatedAt,
		UpdatedAt:     m.NewsEventUpdatedAt,
	}
	if m.NewsEventEventDate != nil {
		d := m.NewsEventEventDate.Format("2006-01-02")
		resp.EventDate = &d
	}
	return resp
}

func ToNewsEventResponses(list []model.NewsEventModel) []NewsEventResponse {
	out := make([]NewsEventResponse, 0, len(list))
	for i := range list {
		out = append(out, ToNewsEventResponse(&list[i]))
	}
	return out
}
