package handlers

import (
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AutomationHandler struct {
	automations *services.AutomationService
	dashboard   *services.DashboardService
}

func NewAutomationHandler(automations *services.AutomationService, dashboard *services.DashboardService) *AutomationHandler {
	return &AutomationHandler{automations: automations, dashboard: dashboard}
}

func (h *AutomationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAutomationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user := middleware.CurrentUser(c)
	automation, err := h.automations.Create(c.UserContext(), user.ID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(automation)
}

func (h *AutomationHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	automations, err := h.automations.List(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(automations)
}

func (h *AutomationHandler) Toggle(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	status, err := h.automations.Toggle(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: status})
}

func (h *AutomationHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.automations.Delete(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

func (h *AutomationHandler) DashboardStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	stats, err := h.dashboard.Stats(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
