package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/config"
	"github.com/davidbz/policybot/internal/http/middleware"
	"github.com/davidbz/policybot/internal/observability"
)

func TestChain(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(tag("first"), tag("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTrace(t *testing.T) {
	t.Run("should inject ids into the context and headers", func(t *testing.T) {
		var requestID, traceID string
		handler := middleware.Trace()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID = observability.GetRequestID(r.Context())
			traceID = observability.GetTraceID(r.Context())
			w.WriteHeader(http.StatusAccepted)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusAccepted, w.Code)
		require.NotEmpty(t, requestID)
		require.Len(t, traceID, 32)
		require.Equal(t, requestID, w.Header().Get("X-Request-Id"))
		require.Equal(t, traceID, w.Header().Get("X-Trace-Id"))
	})

	t.Run("should keep a caller request id", func(t *testing.T) {
		handler := middleware.Trace()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-Id", "req-42")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
	})
}

func TestRecover(t *testing.T) {
	handler := middleware.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.CORSConfig{
		AllowedOrigins: []string{"https://campaign.example"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	}
	handler := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("should allow a configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://campaign.example")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, "https://campaign.example", w.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})

	t.Run("should not allow other origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://elsewhere.example")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should pass through without a config", func(t *testing.T) {
		w := httptest.NewRecorder()
		middleware.CORS(nil)(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("should reject requests beyond the burst", func(t *testing.T) {
		handler := middleware.RateLimit(&config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})(ok)

		codes := make([]int, 0, 3)
		for range 3 {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
			codes = append(codes, w.Code)
		}

		require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("should never limit health probes", func(t *testing.T) {
		handler := middleware.RateLimit(&config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})(ok)

		for range 5 {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("should pass everything through when disabled", func(t *testing.T) {
		handler := middleware.RateLimit(&config.RateLimitConfig{})(ok)

		for range 5 {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}
	})
}
