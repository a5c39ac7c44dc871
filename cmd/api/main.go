package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/config"
	"catalog-backend/internal/seed"
	"catalog-backend/internal/storage"
)

// main wires dependencies and starts the HTTP server.
func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(db, log); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	catalogHandler := catalog.NewHandler(catalog.NewService(catalog.NewPostgresRepository(db)), log)
	catalogHandler.RegisterPublicRoutes(app)

	seedHandler := seed.NewHandler(db, log)
	seedHandler.RegisterDevRoutes(app)

	log.Infof("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
