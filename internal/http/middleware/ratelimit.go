package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/davidbz/policybot/internal/config"
	"github.com/davidbz/policybot/internal/observability"
)

const healthPath = "/health"

// RateLimit rejects requests above the configured global rate with 429.
// Health probes are never limited. A nil config or a zero rate disables it.
func RateLimit(cfg *config.RateLimitConfig) Middleware {
	if cfg == nil || cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == healthPath || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			observability.FromContext(r.Context()).Warn("rate limit exceeded",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path))

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
		})
	}
}
