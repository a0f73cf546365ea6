package handlers

import (
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/catalog"
	"github.com/gofiber/fiber/v2"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// List returns the catalog, optionally narrowed with ?category=. An unknown
// category yields an empty list.
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	return c.JSON(catalog.ByCategory(c.Query("category")))
}
