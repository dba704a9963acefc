package catalog

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/catalog/categories", h.getCategories)
	app.Get("/api/v1/catalog/products", h.getProducts)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCategories())
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "category query parameter is required"})
	}

	products, ok := h.service.ListProducts(category)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
	}
	return c.JSON(products)
}
