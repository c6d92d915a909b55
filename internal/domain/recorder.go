package domain

import (
	"context"
	"fmt"

	"github.com/davidbz/policybot/internal/observability"
)

// UsageRecorder persists the conversation trail and then the spend.
type UsageRecorder struct {
	store  ConversationStore
	ledger BudgetLedger
	events EventPublisher
}

// NewUsageRecorder creates a new usage recorder (DI constructor).
func NewUsageRecorder(store ConversationStore, ledger BudgetLedger, events EventPublisher) *UsageRecorder {
	return &UsageRecorder{
		store:  store,
		ledger: ledger,
		events: events,
	}
}

// Record writes the trail first and increments spend only afterwards, and only
// for a paid answer. A crash between the two loses spend, never doubles it.
func (r *UsageRecorder) Record(ctx context.Context, turn *Turn) error {
	if turn == nil || turn.Result == nil {
		return fmt.Errorf("%w: turn cannot be nil", ErrValidation)
	}

	result := turn.Result
	logger := observability.FromContext(ctx)

	if err := r.store.SaveTurn(ctx, turn); err != nil {
		return r.notRecorded(ctx, turn, "trail", err)
	}

	if result.Cost > 0 {
		if err := r.ledger.RecordSpend(ctx, result.Backend, turn.Month, result.Cost); err != nil {
			return r.notRecorded(ctx, turn, "spend", err)
		}
	}

	logger.Info("usage recorded",
		observability.String("backend", string(result.Backend)),
		observability.Float64("cost", result.Cost),
		observability.Int("tokens_used", result.TokensUsed),
		observability.Bool("usage_recorded", true))

	if r.events != nil {
		r.events.Publish(ctx, observability.EventUsageRecorded, map[string]interface{}{
			"backend":     string(result.Backend),
			"month":       turn.Month,
			"cost":        result.Cost,
			"tokens_used": result.TokensUsed,
		})
	}

	return nil
}

func (r *UsageRecorder) notRecorded(ctx context.Context, turn *Turn, stage string, cause error) error {
	observability.FromContext(ctx).Error("usage not recorded",
		observability.String("stage", stage),
		observability.String("backend", string(turn.Result.Backend)),
		observability.Float64("cost", turn.Result.Cost),
		observability.Bool("usage_recorded", false),
		observability.Error(cause))

	if r.events != nil {
		r.events.Publish(ctx, observability.EventUsageNotRecorded, map[string]interface{}{
			"stage":   stage,
			"backend": string(turn.Result.Backend),
			"month":   turn.Month,
			"cost":    turn.Result.Cost,
			"error":   cause.Error(),
		})
	}

	return fmt.Errorf("%w: %s: %w", ErrUsageNotRecorded, stage, cause)
}
