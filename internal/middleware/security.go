package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders sets the response headers every API reply carries. Strict-Transport-Security
// is only sent when the server sits behind TLS.
func SecurityHeaders(strictTransport bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")
			if strictTransport {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			// Ledger balances must never be served from a cache
			h.Set("Cache-Control", "no-store")

			return next(c)
		}
	}
}
