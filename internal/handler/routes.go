package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
// No OPTIONS routes are registered: the CORS middleware answers preflight
// for every path before routing.
func RegisterRoutes(e *echo.Echo, tides *TideHandler, health *HealthHandler) {
	e.GET("/healthz", health.Healthz)
	e.GET("/status", health.Status)

	e.GET("/proxy", tides.HandleEndpoint)
	e.GET("/proxy/*", tides.HandlePath)
}
