package dto

import (
	"strings"
	"time"

	"riseacademy_backend/internals/features/contact/model"
)

type CreateContactRequest struct {
	ParentName  string `json:"parent_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	StudentName string `json:"student_name" validate:"omitempty,max=100"`
	GradeLevel  string `json:"grade_level" validate:"omitempty,oneof=pre-k elementary middle high"`
	Message     string `json:"message" validate:"omitempty,max=5000"`
}

func (r *CreateContactRequest) ToModel() *model.ContactSubmissionModel {
	return &model.ContactSubmissionModel{
		ContactParentName:  strings.TrimSpace(r.ParentName),
		ContactEmail:       strings.ToLower(strings.TrimSpace(r.Email)),
		ContactPhone:       strings.TrimSpace(r.Phone),
		ContactStudentName: strings.TrimSpace(r.StudentName),
		ContactGradeLevel:  strings.TrimSpace(r.GradeLevel),
		ContactMessage:     strings.TrimSpace(r.Message),
	}
}

type UpdateReadRequest struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

type ContactResponse struct {
	ID          string    `json:"id"`
	ParentName  string    `json:"parent_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	StudentName string    `json:"student_name,omitempty"`
	GradeLevel  string    `json:"grade_level,omitempty"`
	Message     string    `json:"message,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToContactResponse(m *model.ContactSubmissionModel) ContactResponse {
	return ContactResponse{
		ID:          m.ContactID.String(),
		ParentName:  m.ContactParentName,
		Email:       m.ContactEmail,
		Phone:       m.ContactPhone,
		StudentName: m.ContactStudentName,
		GradeLevel:  m.ContactGradeLevel,
		Message:     m.ContactMessage,
		IsRead:      m.ContactIsRead,
		CreatedAt:   m.ContactCreatedAt,
	}
}

func ToContactResponses(list []model.ContactSubmissionModel) []ContactResponse {
	out := make([]ContactResponse, 0, len(list))
	for i := range list {
		out = append(out, ToContactResponse(&list[i]))
	}
	return out
}
