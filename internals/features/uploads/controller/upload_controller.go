package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"riseacademy_backend/internals/constants"
	helper "riseacademy_backend/internals/helpers"
	"riseacademy_backend/internals/helpers/storage"
)

type UploadController struct {
	Blob storage.BlobService
}

func NewUploadController(blob storage.BlobService) *UploadController {
	return &UploadController{Blob: blob}
}

// POST /api/a/uploads/:bucket
// Accepts one multipart image under field "file" (aliases image/photo).
// Type and size are rejected before any storage call. Replaced images
// are never deleted from storage.
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage is not configured")
	}
	bucket := c.Params("bucket")
	if !constants.AllowedBuckets[bucket] {
		return helper.JsonError(c, fiber.StatusNotFound, "Unknown bucket")
	}
	if !storage.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Expected multipart/form-data")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		for _, field := range []string{"image", "photo"} {
			if fh, err = c.FormFile(field); err == nil {
				break
			}
		}
	}
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File not found in request")
	}

	if err := storage.ValidateImageUpload(fh, constants.MaxUploadBytes); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotImage):
			return helper.JsonError(c, fiber.StatusBadRequest, "Please upload an image file")
		case errors.Is(err, storage.ErrTooLarge):
			return helper.JsonError(c, fiber.StatusBadRequest, "Please upload an image smaller than 5MB")
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	url, key, err := ctrl.Blob.Upload(c.Context(), bucket, fh)
	if err != nil {
		log.Println("[ERROR] upload failed:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload failed")
	}

	return helper.JsonCreated(c, "image uploaded", fiber.Map{
		"url":    url,
		"key":    key,
		"bucket": bucket,
	})
}
