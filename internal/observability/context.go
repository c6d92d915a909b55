package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// scopeKey identifies one request-scoped identifier stored in a context.
type scopeKey uint8

const (
	traceScope scopeKey = iota
	spanScope
	requestScope
	sessionScope
	backendScope
)

// scopeFields maps each identifier to its log field name, in log order.
//
//nolint:gochecknoglobals // fixed lookup table
var scopeFields = [...]string{
	traceScope:   "trace_id",
	spanScope:    "span_id",
	requestScope: "request_id",
	sessionScope: "session_id",
	backendScope: "backend",
}

func withScope(ctx context.Context, key scopeKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func scopeValue(ctx context.Context, key scopeKey) string {
	value, _ := ctx.Value(key).(string)
	return value
}

// WithTraceID injects the OpenTelemetry trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withScope(ctx, traceScope, traceID)
}

// WithSpanID injects the OpenTelemetry span ID.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return withScope(ctx, spanScope, spanID)
}

// WithRequestID injects the request identifier echoed in X-Request-ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withScope(ctx, requestScope, requestID)
}

// WithSession tags the context with the chat session.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return withScope(ctx, sessionScope, sessionID)
}

// WithBackend tags the context with the backend answering the request.
func WithBackend(ctx context.Context, backend string) context.Context {
	return withScope(ctx, backendScope, backend)
}

// GetTraceID returns the trace ID, or "" when none is set.
func GetTraceID(ctx context.Context) string {
	return scopeValue(ctx, traceScope)
}

// GetRequestID returns the request identifier, or "" when none is set.
func GetRequestID(ctx context.Context) string {
	return scopeValue(ctx, requestScope)
}

// ContextFields returns one zap field per identifier set on ctx.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, len(scopeFields))
	for key, name := range scopeFields {
		if value := scopeValue(ctx, scopeKey(key)); value != "" {
			fields = append(fields, zap.String(name, value))
		}
	}
	return fields
}

// randomHex returns n <= 16 random bytes hex-encoded, falling back to uuid
// digits when the system source fails.
func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:2*n]
	}
	return hex.EncodeToString(buf)
}

// GenerateTraceID returns a 16-byte W3C trace ID (32 hex chars).
func GenerateTraceID() string {
	return randomHex(16) //nolint:mnd // W3C trace-id width
}

// GenerateSpanID returns an 8-byte W3C span ID (16 hex chars).
func GenerateSpanID() string {
	return randomHex(8) //nolint:mnd // W3C parent-id width
}

// GenerateRequestID returns a random UUID.
func GenerateRequestID() string {
	return uuid.NewString()
}
