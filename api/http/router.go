package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/triage/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, triage *handlers.TriageHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/recommend", triage.Recommend)

	// Versioned alias
	v1 := app.Group("/api/v1")
	v1.Post("/recommend", triage.Recommend)
}
