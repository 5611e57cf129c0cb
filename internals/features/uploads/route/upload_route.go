package route

import (
	"github.com/gofiber/fiber/v2"

	"riseacademy_backend/internals/features/uploads/controller"
	"riseacademy_backend/internals/helpers/storage"
)

func AdminUploadRoutes(r fiber.Router, blob storage.BlobService) {
	ctrl := controller.NewUploadController(blob)
	r.Post("/uploads/:bucket", ctrl.Upload)
}
