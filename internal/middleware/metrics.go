package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

// InitMetrics creates the Prometheus middleware that records HTTP request
// counts and latencies per route.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// RegisterMetrics attaches the metrics middleware and exposes /metrics.
func RegisterMetrics(app *fiber.App, prom *fiberprometheus.FiberPrometheus) {
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}
