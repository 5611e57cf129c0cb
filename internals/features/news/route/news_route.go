package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"riseacademy_backend/internals/features/news/controller"
)

func PublicNewsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)
	r.Get("/news", ctrl.PublicList)
	r.Get("/news/:id", ctrl.PublicDetail)
	r.Get("/events/upcoming", ctrl.PublicUpcomingEvents)
}

func AdminNewsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)
	r.Get("/news", ctrl.AdminList)
	r.Post("/news", ctrl.Create)
	r.Patch("/news/:id", ctrl.Update)
	r.Delete("/news/:id", ctrl.Delete)
}
