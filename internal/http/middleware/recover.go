package middleware

import (
	"fmt"
	"net/http"

	"github.com/davidbz/policybot/internal/observability"
)

// Recover turns a handler panic into a logged 500 with a JSON error body.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						panic(p)
					}
					observability.FromContext(r.Context()).Error("handler panicked",
						observability.String("path", r.URL.Path),
						observability.Error(fmt.Errorf("panic: %v", p)))

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"internal server error"}` + "\n"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
