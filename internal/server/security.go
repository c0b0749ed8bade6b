package server

import (
	"net/http"
	"strings"
)

// SecurityConfig holds the response hardening and request limits.
type SecurityConfig struct {
	// EnableCORS adds Access-Control-* headers for allowed origins.
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
	// MaxBodyBytes caps the POST /solve body.
	MaxBodyBytes int64
}

// DefaultSecurityConfig allows any origin and 64 KiB bodies.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		MaxBodyBytes:   64 << 10,
	}
}

// SecurityMiddleware sets the hardening headers on every response, adds
// CORS headers when enabled and answers preflight requests directly.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			origin := r.Header.Get("Origin")
			for _, allowed := range config.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					h.Set("Access-Control-Allow-Origin", allowed)
					h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
					h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
					h.Set("Access-Control-Max-Age", "86400")
					break
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}
