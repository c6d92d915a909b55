package middleware

import (
	"net/http"

	"github.com/davidbz/policybot/internal/config"
)

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares; the first one is the outermost wrapper.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// BuildMiddlewareChain composes the production chain: CORS -> Trace -> RateLimit -> Recover.
func BuildMiddlewareChain(corsConfig *config.CORSConfig, rateConfig *config.RateLimitConfig) Middleware {
	return Chain(
		CORS(corsConfig),
		Trace(),
		RateLimit(rateConfig),
		Recover(),
	)
}
