package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

// Snapshot is the routing view of the ledger and backend availability.
type Snapshot struct {
	Windows       map[domain.BackendID]domain.BudgetWindow
	Available     map[domain.BackendID]bool
	RequireWindow bool
}

// affordable reports whether a paid backend is configured and within budget.
func (s Snapshot) affordable(id domain.BackendID) bool {
	if !s.Available[id] {
		return false
	}

	window, ok := s.Windows[id]
	if !ok {
		return !s.RequireWindow
	}
	return window.HasRoom()
}

// Decide applies the admission-control cascade. It is a pure function of its inputs.
func Decide(tokens int, cfg Config, snapshot Snapshot) domain.BackendID {
	if tokens < cfg.SimpleMax {
		return domain.FreeBackend
	}

	if tokens >= cfg.ComplexMax && snapshot.affordable(domain.BackendAnthropic) {
		return domain.BackendAnthropic
	}

	if snapshot.affordable(domain.BackendOpenAI) {
		return domain.BackendOpenAI
	}

	return domain.FreeBackend
}

// BudgetSelector picks backends from complexity and the current month's budget.
type BudgetSelector struct {
	cfg      *Config
	registry domain.BackendRegistry
	ledger   domain.BudgetLedger
	now      domain.Clock
}

// NewSelector creates a new budget-aware selector.
func NewSelector(cfg *Config, registry domain.BackendRegistry, ledger domain.BudgetLedger) *BudgetSelector {
	return &BudgetSelector{
		cfg:      cfg,
		registry: registry,
		ledger:   ledger,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to pick the budget month.
func (s *BudgetSelector) WithClock(now domain.Clock) *BudgetSelector {
	s.now = now
	return s
}

// Select returns the backend for a message with the given token estimate.
// Simple messages never touch the ledger.
func (s *BudgetSelector) Select(ctx context.Context, tokens int) (domain.BackendID, error) {
	logger := observability.FromContext(ctx)

	if tokens < s.cfg.SimpleMax {
		return domain.FreeBackend, nil
	}

	month := domain.MonthKey(s.now())
	windows, err := s.ledger.GetWindows(ctx, month)
	if err != nil {
		return "", fmt.Errorf("%w: read budget windows for %s: %w", domain.ErrStorage, month, err)
	}

	snapshot := Snapshot{
		Windows: windows,
		Available: map[domain.BackendID]bool{
			domain.BackendOpenAI:    s.registry.Available(ctx, domain.BackendOpenAI),
			domain.BackendAnthropic: s.registry.Available(ctx, domain.BackendAnthropic),
		},
		RequireWindow: s.cfg.RequireWindow,
	}

	selected := Decide(tokens, *s.cfg, snapshot)

	logger.Debug("backend selected",
		observability.String("selected", string(selected)),
		observability.Int("tokens", tokens),
		observability.String("month", month))

	return selected, nil
}
