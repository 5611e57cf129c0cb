package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "riseacademy_backend/internals/databases"
	contactRoute "riseacademy_backend/internals/features/contact/route"
	contactService "riseacademy_backend/internals/features/contact/service"
	newsRoute "riseacademy_backend/internals/features/news/route"
	testimonialRoute "riseacademy_backend/internals/features/testimonials/route"
	uploadRoute "riseacademy_backend/internals/features/uploads/route"
	authRoute "riseacademy_backend/internals/features/users/auth/route"
	"riseacademy_backend/internals/helpers/storage"
	authMw "riseacademy_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts the whole API surface:
//
//	/api/public  read endpoints + contact submission (no auth)
//	/api/auth    login/logout/me
//	/api/a       admin CRUD, triage and uploads (auth + admin)
func SetupRoutes(app *fiber.App, db *gorm.DB, blob storage.BlobService, notifier contactService.Notifier) {
	startTime = time.Now()

	BaseRoutes(app)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	contactRoute.PublicContactRoutes(public, db, notifier)
	newsRoute.PublicNewsRoutes(public, db)
	testimonialRoute.PublicTestimonialRoutes(public, db)

	log.Println("[INFO] Setting up AUTH group...")
	auth := app.Group("/api/auth")
	authRoute.AuthRoutes(auth, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db), authMw.RequireAdmin())
	newsRoute.AdminNewsRoutes(admin, db)
	testimonialRoute.AdminTestimonialRoutes(admin, db)
	contactRoute.AdminContactRoutes(admin, db)
	uploadRoute.AdminUploadRoutes(admin, blob)
}

// BaseRoutes mounts the root and health endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Rise Academy API")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := database.Ping(); err != nil {
			dbStatus = "database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}
		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
