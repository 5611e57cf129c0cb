package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactSubmissionModel struct {
	ContactID uuid.UUID `json:"contact_id" gorm:"column:contact_id;type:uuid;primaryKey"`

	ContactParentName  string `json:"contact_parent_name" gorm:"column:contact_parent_name;type:varchar(100);not null"`
	ContactEmail       string `json:"contact_email" gorm:"column:contact_email;type:varchar(255);not null"`
	ContactPhone       string `json:"contact_phone" gorm:"column:contact_phone;type:varchar(30)"`
	ContactStudentName string `json:"contact_student_name" gorm:"column:contact_student_name;type:varchar(100)"`
	ContactGradeLevel  string `json:"contact_grade_level" gorm:"column:contact_grade_level;type:varchar(20)"`
	ContactMessage     string `json:"contact_message" gorm:"column:contact_message;type:text"`

	ContactIsRead bool `json:"contact_is_read" gorm:"column:contact_is_read;not null;default:false"`

	ContactCreatedAt time.Time `json:"contact_created_at" gorm:"column:contact_created_at;autoCreateTime"`
}

func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}

func (m *ContactSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactID == uuid.Nil {
		m.ContactID = uuid.New()
	}
	return nil
}
