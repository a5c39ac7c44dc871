package seed

import (
	"database/sql"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Handler exposes a dev-only seed endpoint. The query path stays read-only;
// this is the single write surface and it is disabled unless ALLOW_SEED=1.
type Handler struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewHandler(db *sql.DB, log *logrus.Logger) *Handler {
	return &Handler{db: db, log: log}
}

func (h *Handler) RegisterDevRoutes(app *fiber.App) {
	app.Post("/dev/seed", h.applySeed)
}

type seedRequest struct {
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
}

func (h *Handler) applySeed(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_SEED") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("seeding not allowed")
	}

	var req seedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := Apply(h.db, req.Products, req.Orders, h.log); err != nil {
		h.log.Errorf("seed failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"products": len(req.Products), "orders": len(req.Orders)})
}
