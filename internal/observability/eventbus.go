package observability

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// Event types published by the chat pipeline.
const (
	EventDispatchFallback = "dispatch.fallback"
	EventUsageRecorded    = "usage.recorded"
	EventUsageNotRecorded = "usage.not_recorded"
	EventReferenceSynced  = "reference.synced"
)

// EventBus implements the EventPublisher interface on top of the request logger.
type EventBus struct {
	logger *zap.Logger
}

// NewEventBus creates a new event bus. A nil logger uses the global base logger.
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		logger: logger,
	}
}

// Publish logs an event with the given type and data, tagged with the
// request-scoped identifiers of ctx.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	logger := FromContext(ctx)
	if e.logger != nil {
		logger = e.logger.With(ContextFields(ctx)...)
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(data)+1)
	fields = append(fields, zap.String("event", eventType))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, data[k]))
	}

	logger.Info(eventType, fields...)
}
