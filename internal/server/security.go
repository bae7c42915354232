package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to every HTTP response.
type SecurityConfig struct {
	// EnableCORS toggles cross-origin headers.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to call the API; "*" allows
	// any.
	AllowedOrigins []string
	// AllowedMethods lists methods advertised in CORS responses.
	AllowedMethods []string
	// MaxOperand caps operand values accepted by the scoring endpoint,
	// bounding per-request work.
	MaxOperand uint64
}

// DefaultSecurityConfig returns the configuration used unless overridden.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxOperand:     1_000_000_000,
	}
}

// SecurityMiddleware sets standard security headers and, when enabled,
// CORS headers on every response. OPTIONS preflight requests are answered
// directly.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value for the
// request origin, or empty when the origin is not allowed.
func allowedOrigin(config SecurityConfig, origin string) string {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}
