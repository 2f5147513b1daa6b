package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders sets hardening headers on every response. The API serves
// JSON only, so the policy is simple: never render, never embed, never cache.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			// Prevent MIME type sniffing
			h.Set("X-Content-Type-Options", "nosniff")

			// Prevent clickjacking
			h.Set("X-Frame-Options", "DENY")

			// Deny-everything CSP; also guards error bodies a browser might
			// otherwise interpret as HTML.
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

			// Do not send Referer header to downstream services.
			h.Set("Referrer-Policy", "no-referrer")

			// Responses carry patient and clinic data; never cache them.
			h.Set("Cache-Control", "no-store")

			// HSTS only makes sense on a TLS response. Plain-HTTP serving
			// (local development, in-cluster health probes behind the TLS
			// terminator) must not pin browsers to HTTPS.
			if c.IsTLS() || c.Request().Header.Get("X-Forwarded-Proto") == "https" {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			return next(c)
		}
	}
}
