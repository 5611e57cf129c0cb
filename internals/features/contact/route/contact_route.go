package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"riseacademy_backend/internals/features/contact/controller"
	"riseacademy_backend/internals/features/contact/service"
)

// PublicContactRoutes mounts the contact-form submission endpoint.
func PublicContactRoutes(r fiber.Router, db *gorm.DB, notifier service.Notifier) {
	ctrl := controller.NewContactController(db, notifier)
	r.Post("/contact", ctrl.Create)
}

// AdminContactRoutes mounts the inquiry triage endpoints.
// The caller wires auth + admin middleware on the group.
func AdminContactRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactController(db, nil)
	r.Get("/contacts", ctrl.List)
	r.Get("/contacts/:id", ctrl.GetByID)
	r.Post("/contacts/:id/read", ctrl.MarkRead)
	r.Patch("/contacts/:id/read", ctrl.SetRead)
	r.Delete("/contacts/:id", ctrl.Delete)
}
