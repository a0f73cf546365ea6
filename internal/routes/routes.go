package routes

import (
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/flowforge/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	requireUser fiber.Handler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	templateHandler *handlers.TemplateHandler,
	automationHandler *handlers.AutomationHandler,
	activityHandler *handlers.ActivityHandler,
	suggestionHandler *handlers.SuggestionHandler,
) {
	// Prometheus scrape endpoint, outside the API prefix
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)
	api.Get("/templates", templateHandler.List)

	// Auth: register/login are public, the rest need a session
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", requireUser, authHandler.Me)
	auth.Put("/onboard", requireUser, authHandler.Onboard)

	automations := api.Group("/automations", requireUser)
	automations.Post("/", automationHandler.Create)
	automations.Get("/", automationHandler.List)
	automations.Put("/:id/toggle", automationHandler.Toggle)
	automations.Delete("/:id", automationHandler.Delete)

	api.Get("/dashboard/stats", requireUser, automationHandler.DashboardStats)
	api.Get("/activity", requireUser, activityHandler.List)
	api.Post("/ai/suggest", requireUser, suggestionHandler.Suggest)
}
