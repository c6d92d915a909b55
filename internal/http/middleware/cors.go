package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/davidbz/policybot/internal/config"
)

// CORS creates a middleware backed by github.com/rs/cors. The embedded chat
// widget reads the trace headers, so they are exposed.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	// Browsers reject a wildcard origin on credentialed requests.
	allowCredentials := cfg.AllowCredentials && !slices.Contains(cfg.AllowedOrigins, "*")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{traceHeader, requestHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
