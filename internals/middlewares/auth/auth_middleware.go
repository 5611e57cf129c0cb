package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"riseacademy_backend/internals/configs"
	authModel "riseacademy_backend/internals/features/users/auth/model"
	helper "riseacademy_backend/internals/helpers"
)

const (
	LocUserID  = "user_id"
	LocIsAdmin = "is_admin"
)

// AuthMiddleware verifies the bearer token: signature, expiry, blacklist.
// On success it stashes user_id, is_admin and the raw token in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing access token")
		}

		// Blacklist check, once per request.
		var revoked authModel.TokenBlacklistModel
		if err := db.Where("token = ?", raw).First(&revoked).Error; err == nil {
			log.Println("[WARNING] Rejected blacklisted token")
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token has been revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] Blacklist lookup failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
		}

		c.Locals(LocUserID, userID.String())
		c.Locals(LocIsAdmin, extractIsAdmin(claims))
		helper.SetRawAccessToken(c, raw)
		return c.Next()
	}
}

// RequireAdmin gates admin routes. Must run after AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, _ := c.Locals(LocIsAdmin).(bool)
		if !isAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		if v, ok := claims["user_id"].(string); ok {
			sub = v
		}
	}
	return uuid.Parse(sub)
}

func extractIsAdmin(claims jwt.MapClaims) bool {
	v, _ := claims["is_admin"].(bool)
	return v
}

// ClaimsExpiry returns the token exp as a time, zero when absent.
func ClaimsExpiry(claims jwt.MapClaims) time.Time {
	if f, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(f), 0)
	}
	return time.Time{}
}
