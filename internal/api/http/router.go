package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Catalog  *handlers.CatalogHandler
	Tickets  *handlers.TicketsHandler
	Imports  *handlers.ImportsHandler
	Tracking *handlers.TrackingHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	catalog := app.Group("/catalog")
	catalog.Get("/applications", cfg.Catalog.ListApplications)
	catalog.Get("/categories", cfg.Catalog.ListCategories)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/metrics", cfg.Tickets.Metrics)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id", cfg.Tickets.UpdateTicket)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)
	tickets.Post("/:id/treatments", cfg.Tickets.AddTreatment)
	tickets.Post("/:id/evaluations", cfg.Tickets.AddEvaluation)

	imports := app.Group("/imports")
	imports.Post("/", cfg.Imports.Upload)
	imports.Get("/template", cfg.Imports.Template)

	tracking := app.Group("/tracking")
	tracking.Get("/submissions", cfg.Tracking.ListSubmissions)
	tracking.Get("/stats", cfg.Tracking.Stats)
}
