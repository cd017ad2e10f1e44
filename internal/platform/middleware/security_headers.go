package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeadersConfig controls the optional headers.
type SecurityHeadersConfig struct {
	// HSTS adds Strict-Transport-Security. Only enable behind TLS.
	HSTS bool
}

// SecurityHeaders sets response headers for a JSON-only API. Answers and
// reports describe a user's health, so responses are never cached.
func SecurityHeaders(cfg SecurityHeadersConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Cache-Control", "no-store")

			if cfg.HSTS {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			return next(c)
		}
	}
}
