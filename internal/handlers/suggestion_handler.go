package handlers

import (
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/dto"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SuggestionHandler struct {
	suggestions *services.SuggestionService
}

func NewSuggestionHandler(suggestions *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// Suggest always answers 200. When the model cannot be used the body carries
// the fallback suggestion and source "fallback".
func (h *SuggestionHandler) Suggest(c *fiber.Ctx) error {
	var req dto.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user := middleware.CurrentUser(c)
	return c.JSON(h.suggestions.Suggest(c.UserContext(), user.ID, req.Message))
}
