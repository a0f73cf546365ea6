package handlers

import (
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.NewUserResponse(middleware.CurrentUser(c)))
}

func (h *AuthHandler) Onboard(c *fiber.Ctx) error {
	var req dto.OnboardRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.authService.Onboard(c.UserContext(), middleware.CurrentUser(c), &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.StatusResponse{Status: "ok"})
}
