package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"riseacademy_backend/internals/features/users/auth/controller"
	authMw "riseacademy_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /login, /logout and /me under the auth group.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r.Post("/login", ctrl.Login)
	r.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
	r.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
}
