package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Ranmdom/Desafio-Ray/internal/handler"
	"github.com/Ranmdom/Desafio-Ray/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Export    *handler.ExportHandler
	Health    *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
// Every data route is read-only.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (outside the API group, no rate limit)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")
	api.Use(middleware.NewDashboardRateLimiter().Handler())

	api.Get("/overview", h.Dashboard.Overview)
	api.Get("/highlights", h.Dashboard.Scatter)
	api.Get("/highlights/top", h.Dashboard.TopByViews)
	api.Get("/monthly/views", h.Dashboard.MonthlyViews)
	api.Get("/monthly/engagement", h.Dashboard.MonthlyEngagement)
	api.Get("/summary/monthly", h.Dashboard.MonthlySummary)
	api.Get("/summary/drivers", h.Dashboard.DriverSummary)

	api.Get("/export.csv", h.Export.Export, middleware.NewExportRateLimiter().Handler())
}
