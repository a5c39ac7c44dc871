package catalog

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	log     *logrus.Logger
}

func NewHandler(service *Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.listProducts)
	app.Get("/api/products/filters", h.getFilterOptions)
}

type listResponse struct {
	Items []Product `json:"items"`
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	items, err := h.service.List(parseListQuery(c))
	if err != nil {
		h.log.Errorf("list products failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(listResponse{Items: items})
}

func (h *Handler) getFilterOptions(c *fiber.Ctx) error {
	opts, err := h.service.FilterOptions()
	if err != nil {
		h.log.Errorf("filter options failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(opts)
}

// parseListQuery translates the stringly-typed query parameters into a typed
// Query. Parsing is deliberately permissive: malformed values are dropped and
// treated as absent so the request still returns a best-effort result.
func parseListQuery(c *fiber.Ctx) Query {
	return Query{
		Search:     c.Query("q"),
		Categories: queryValues(c, "category"),
		Brands:     queryValues(c, "brand"),
		MinPrice:   queryFloat(c, "minPrice"),
		MaxPrice:   queryFloat(c, "maxPrice"),
		Sort:       ParseSortKey(c.Query("sort")),
	}
}

// queryValues collects every occurrence of a repeatable parameter, so a single
// scalar occurrence becomes a one-element list.
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) == 0 {
			continue
		}
		out = append(out, string(v))
	}
	return out
}

// queryFloat parses a numeric bound. Non-numeric and non-finite values are
// treated as absent, not as zero.
func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
