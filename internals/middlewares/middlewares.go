package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SetupMiddlewares registers the global middleware chain:
// request-id, recovery, cors, request logging.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RequestIDMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RequestLogger())
	log.Println("[INFO] Global middlewares registered")
}

const LocRequestID = "request_id"

// RequestIDMiddleware honors an incoming X-Request-ID or mints one,
// stores it in Locals and echoes it on the response.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocRequestID, rid)
		c.Set("X-Request-ID", rid)
		return c.Next()
	}
}

// RequestLogger logs method, path, status and latency for every request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		rid, _ := c.Locals(LocRequestID).(string)
		log.Printf("[INFO] %s %s -> %d (%s) rid=%s",
			c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start), rid)
		return err
	}
}
