// Package memory provides an in-process budget ledger for tests and
// single-instance deployments without persistence.
package memory

import (
	"context"
	"sync"

	"github.com/davidbz/policybot/internal/domain"
)

type windowKey struct {
	backend domain.BackendID
	month   string
}

// Ledger is a mutex-guarded BudgetLedger.
type Ledger struct {
	mu      sync.RWMutex
	limits  map[domain.BackendID]float64
	windows map[windowKey]*domain.BudgetWindow
}

var _ domain.BudgetAdmin = (*Ledger)(nil)

// New creates a ledger that provisions each month with the given ceilings.
func New(limits map[domain.BackendID]float64) *Ledger {
	copied := make(map[domain.BackendID]float64, len(limits))
	for id, limit := range limits {
		copied[id] = limit
	}

	return &Ledger{
		limits:  copied,
		windows: make(map[windowKey]*domain.BudgetWindow),
	}
}

// GetWindows returns a copy of every window for the month.
func (l *Ledger) GetWindows(_ context.Context, month string) (map[domain.BackendID]domain.BudgetWindow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for backend := range l.limits {
		l.provision(backend, month)
	}

	windows := make(map[domain.BackendID]domain.BudgetWindow)
	for key, window := range l.windows {
		if key.month == month {
			windows[key.backend] = *window
		}
	}

	return windows, nil
}

// RecordSpend adds amount to a window under the write lock.
func (l *Ledger) RecordSpend(_ context.Context, backend domain.BackendID, month string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.provision(backend, month)
	if window == nil {
		return nil
	}
	window.Spend += amount

	return nil
}

// SetLimit creates or updates the ceiling of a window, keeping its spend.
func (l *Ledger) SetLimit(_ context.Context, backend domain.BackendID, month string, limit float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := windowKey{backend: backend, month: month}
	window, ok := l.windows[key]
	if !ok {
		window = &domain.BudgetWindow{Backend: backend, Month: month}
		l.windows[key] = window
	}
	window.Limit = limit

	return nil
}

// provision returns the window, creating it from the configured ceiling. A
// ceiling of zero still yields a window, which blocks the backend.
// Callers must hold the write lock.
func (l *Ledger) provision(backend domain.BackendID, month string) *domain.BudgetWindow {
	key := windowKey{backend: backend, month: month}
	if window, ok := l.windows[key]; ok {
		return window
	}

	limit, ok := l.limits[backend]
	if !ok {
		return nil
	}

	window := &domain.BudgetWindow{Backend: backend, Month: month, Limit: limit}
	l.windows[key] = window
	return window
}
