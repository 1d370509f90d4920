package middleware

import (
	"net/http"
)

// SecurityHeadersConfig holds configuration for security headers middleware
type SecurityHeadersConfig struct {
	// EnableHSTS enables the HSTS header (for reverse proxy scenarios)
	EnableHSTS bool
}

// SecurityHeaders adds standard security headers to all HTTP responses.
// The MCP endpoints serve JSON to non-browser clients, so the headers aim
// at hardening the health and metrics surfaces against accidental browser
// exposure.
func SecurityHeaders(config SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Prevent clickjacking
			w.Header().Set("X-Frame-Options", "DENY")

			// Force HTTPS (configurable for reverse proxy scenarios)
			if r.TLS != nil || config.EnableHSTS {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
			}

			// Restrict referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// Content Security Policy
			w.Header().Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'; base-uri 'self'")

			next.ServeHTTP(w, r)
		})
	}
}
