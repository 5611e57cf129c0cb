package storage

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file exceeds the size limit")
)

// BlobService is the upload facade controllers depend on.
// The OSS client implements it in production; tests use MockBlobService.
type BlobService interface {
	// Upload stores fh into bucket and returns the public URL and object key.
	Upload(ctx context.Context, bucket string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
}

// ValidateImageUpload enforces the upload contract before any storage call:
// content type must be image/*, size at most maxBytes.
func ValidateImageUpload(fh *multipart.FileHeader, maxBytes int64) error {
	if fh == nil {
		return errors.New("file not found")
	}
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if !strings.HasPrefix(ct, "image/") {
		return ErrNotImage
	}
	if fh.Size > maxBytes {
		return ErrTooLarge
	}
	return nil
}

// IsMultipart reports whether the request is multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}
