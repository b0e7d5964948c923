package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/driver-registry/internal/api/http/handlers"
	"github.com/spec-kit/driver-registry/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Metrics         *handlers.MetricsHandler
	Driver          *handlers.DriverHandler
	TokenMiddleware *auth.TokenMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Show)

	app.Get("/driver", cfg.TokenMiddleware.Handle, cfg.Driver.Lookup)
}
