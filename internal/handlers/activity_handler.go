package handlers

import (
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	activity *services.ActivityService
}

func NewActivityHandler(activity *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := h.activity.List(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
