package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"riseacademy_backend/internals/features/testimonials/controller"
)

func PublicTestimonialRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)
	r.Get("/testimonials", ctrl.PublicList)
}

func AdminTestimonialRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)
	r.Get("/testimonials", ctrl.AdminList)
	r.Post("/testimonials", ctrl.Create)
	r.Patch("/testimonials/:id", ctrl.Update)
	r.Delete("/testimonials/:id", ctrl.Delete)
}
