package handlers

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/database"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const serviceName = "flow-forge"

type HealthHandler struct {
	ping func(ctx context.Context) error
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{ping: func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}}
}

// Check always answers 200; a database failure is reported in the body.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.ping(c.UserContext()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
