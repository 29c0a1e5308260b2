package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS returns an Echo middleware that attaches permissive CORS headers to
// every response and answers OPTIONS preflight directly with 200 and an
// empty body. The upstream CHS API sends no CORS headers of its own, which
// is the reason this gateway exists.
//
// Short-circuiting before the matched handler runs means preflight succeeds
// on any path, including ones no route matches.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}
