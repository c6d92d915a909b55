package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidbz/policybot/internal/observability"
)

// Dispatcher orchestrates classify, select and query with a single fallback.
type Dispatcher struct {
	selector Selector
	registry BackendRegistry
	events   EventPublisher
}

// NewDispatcher creates a new dispatcher (DI constructor).
func NewDispatcher(selector Selector, registry BackendRegistry, events EventPublisher) *Dispatcher {
	return &Dispatcher{
		selector: selector,
		registry: registry,
		events:   events,
	}
}

// Dispatch answers a message. A failure on the selected backend is retried
// once against the free backend; the result then reports the free backend.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) (*DispatchResult, error) {
	if msg.Text == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", ErrValidation)
	}

	level := msg.Sophistication()
	systemPrompt := SystemPrompt(level)

	selected, err := d.selector.Select(ctx, msg.Tokens())
	if err != nil {
		return nil, fmt.Errorf("backend selection failed: %w", err)
	}

	// Backend calls outlive a disconnected client; adapter timeouts bound them.
	callCtx := context.WithoutCancel(ctx)
	logger := observability.FromContext(ctx)
	start := time.Now()

	response, primaryErr := d.query(callCtx, selected, msg.Text, systemPrompt)
	if primaryErr == nil {
		return d.result(selected, selected, level, response, start), nil
	}

	if selected == FreeBackend {
		return nil, &DispatchError{Selected: selected, Primary: nil, Fallback: primaryErr}
	}

	logger.Warn("backend failed, falling back",
		observability.String("selected", string(selected)),
		observability.String("fallback", string(FreeBackend)),
		observability.Error(primaryErr))

	if d.events != nil {
		d.events.Publish(ctx, observability.EventDispatchFallback, map[string]interface{}{
			"selected":    string(selected),
			"fallback":    string(FreeBackend),
			"error":       primaryErr.Error(),
			"unavailable": errors.Is(primaryErr, ErrBackendUnavailable),
		})
	}

	response, fallbackErr := d.query(callCtx, FreeBackend, msg.Text, systemPrompt)
	if fallbackErr != nil {
		return nil, &DispatchError{Selected: selected, Primary: primaryErr, Fallback: fallbackErr}
	}

	return d.result(FreeBackend, selected, level, response, start), nil
}

func (d *Dispatcher) query(
	ctx context.Context,
	id BackendID,
	prompt string,
	systemPrompt string,
) (*BackendResponse, error) {
	backend, err := d.registry.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, id, err)
	}

	ctx = observability.WithBackend(ctx, string(id))
	response, err := backend.Query(ctx, prompt, systemPrompt)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, fmt.Errorf("%w: %s returned no response", ErrBackend, id)
	}
	return response, nil
}

func (d *Dispatcher) result(
	used BackendID,
	selected BackendID,
	level Sophistication,
	response *BackendResponse,
	start time.Time,
) *DispatchResult {
	return &DispatchResult{
		Backend:        used,
		Selected:       selected,
		Model:          response.Model,
		Text:           response.Text,
		TokensUsed:     response.Usage.TotalTokens,
		Cost:           response.Cost,
		Duration:       time.Since(start),
		Sophistication: level,
		FellBack:       used != selected,
	}
}
