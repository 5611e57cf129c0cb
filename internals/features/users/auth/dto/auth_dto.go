package dto

import (
	"time"

	userModel "riseacademy_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID.String(),
		Email:     m.UserEmail,
		FullName:  m.UserFullName,
		IsAdmin:   m.UserIsAdmin,
		CreatedAt: m.UserCreatedAt,
	}
}
