package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"riseacademy_backend/internals/configs"
	database "riseacademy_backend/internals/databases"
	contactService "riseacademy_backend/internals/features/contact/service"
	scheduler "riseacademy_backend/internals/features/users/auth/scheduler"
	"riseacademy_backend/internals/helpers/storage"
	middlewares "riseacademy_backend/internals/middlewares"
	routes "riseacademy_backend/internals/route"
	"riseacademy_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	if err := seeds.SeedAdmin(database.DB); err != nil {
		log.Printf("[ERROR] admin seed failed: %v", err)
	}

	scheduler.StartBlacklistCleanupScheduler(database.DB)

	blob, err := storage.NewOSSServiceFromEnv()
	var blobSvc storage.BlobService
	if err != nil {
		log.Printf("[WARNING] OSS disabled: %v", err)
		blobSvc = nil
	} else {
		blobSvc = blob
	}

	notifier := contactService.NewNotifierFromEnv()

	routes.SetupRoutes(app, database.DB, blobSvc, notifier)

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("[INFO] 🚀 listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("[ERROR] server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
}
