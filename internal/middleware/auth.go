package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/flowforge/internal/auth"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/models"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userLocalKey = "user"

// TokenVerifier resolves a session token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder loads the user a verified token refers to.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireUser authenticates the request from the Authorization header and
// stores the resolved user in the context locals. The "Bearer " prefix is
// optional.
func RequireUser(tokens TokenVerifier, users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "Missing authorization")
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		sub, err := tokens.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return unauthorized(c, "Token expired")
			}
			return unauthorized(c, "Invalid token")
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		user, err := users.FindByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return unauthorized(c, "User not found")
			}
			slog.Error("auth guard user lookup failed", "user_id", sub, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser, or nil on routes the
// guard does not cover.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(userLocalKey).(*models.User); ok {
		return user
	}
	return nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
