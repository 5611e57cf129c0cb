package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Revoked access tokens. Rows past expires_at are purged by the cleanup scheduler.
type TokenBlacklistModel struct {
	ID        uuid.UUID      `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Token     string         `json:"token" gorm:"column:token;type:text;not null;index"`
	ExpiresAt time.Time      `json:"expires_at" gorm:"column:expires_at;not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}

func (m *TokenBlacklistModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
