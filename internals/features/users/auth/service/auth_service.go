package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"riseacademy_backend/internals/configs"
	authDTO "riseacademy_backend/internals/features/users/auth/dto"
	authModel "riseacademy_backend/internals/features/users/auth/model"
	userModel "riseacademy_backend/internals/features/users/user/model"
	helper "riseacademy_backend/internals/helpers"
)

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] Login lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, expiresAt, err := IssueAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] Token issue failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not issue token")
	}

	return helper.JsonOK(c, "login successful", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		User:        authDTO.ToUserResponse(&user),
	})
}

// POST /api/auth/logout
// Blacklists the presented token until its natural expiry.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing access token")
	}

	expiresAt := time.Now().Add(configs.AccessTokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if f, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(f), 0)
		}
	}

	entry := authModel.TokenBlacklistModel{Token: raw, ExpiresAt: expiresAt}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Blacklist insert failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}

	return helper.JsonOK(c, "logout successful", nil)
}

// GET /api/auth/me
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user context")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] Me lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "ok", authDTO.ToUserResponse(&user))
}

// IssueAccessToken signs an HS256 access token carrying sub and is_admin.
func IssueAccessToken(user *userModel.UserModel) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT secret not configured")
	}
	expiresAt := time.Now().Add(configs.AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":      user.UserID.String(),
		"email":    user.UserEmail,
		"is_admin": user.UserIsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
