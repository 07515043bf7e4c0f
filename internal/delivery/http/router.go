package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, svcs Services, log *zap.Logger) {
	handler := NewHandler(svcs, log)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// Prometheus exposition
	metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metrics(c.Context())
		return nil
	})

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/dashboard", handler.GetDashboard)
		api.Get("/mode", handler.GetMode)

		// Calculators
		api.Post("/calc/area", handler.CalculateArea)
		api.Post("/calc/insumos", handler.CalculateInsumo)

		// Calculation log
		api.Get("/records", handler.ListRecords)

		// Analytics panels (mock or remote)
		api.Post("/analytics/stats", handler.GetStats)
		api.Post("/weather/summary", handler.GetWeather)
	}
}
