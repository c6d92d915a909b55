// Package postgres provides a PostgreSQL-backed budget ledger.
//
// Windows live in one table keyed by (backend, month_year). Spend is
// increased with a single upsert statement, so concurrent writers from any
// number of instances never lose an increment.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidbz/policybot/internal/domain"
)

// Ledger is a PostgreSQL-backed BudgetLedger.
type Ledger struct {
	pool        *pgxpool.Pool
	tablePrefix string
	limits      map[domain.BackendID]float64
}

var _ domain.BudgetAdmin = (*Ledger)(nil)

// Option configures Ledger.
type Option func(*Ledger)

// WithTablePrefix sets the table name prefix (default "policybot_").
func WithTablePrefix(prefix string) Option {
	return func(l *Ledger) { l.tablePrefix = prefix }
}

// New creates a Postgres ledger that provisions each month with the given ceilings.
func New(pool *pgxpool.Pool, limits map[domain.BackendID]float64, opts ...Option) *Ledger {
	copied := make(map[domain.BackendID]float64, len(limits))
	for id, limit := range limits {
		copied[id] = limit
	}

	l := &Ledger{
		pool:        pool,
		tablePrefix: "policybot_",
		limits:      copied,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) budgetTable() string { return l.tablePrefix + "budget_tracking" }

// EnsureSchema creates the budget table if it does not exist.
func (l *Ledger) EnsureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			backend TEXT NOT NULL,
			month_year TEXT NOT NULL,
			budget_limit DOUBLE PRECISION NOT NULL DEFAULT 0,
			current_spend DOUBLE PRECISION NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (backend, month_year)
		);
	`, l.budgetTable())
	if _, err := l.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("%w: postgres ensure schema: %w", domain.ErrStorage, err)
	}
	return nil
}

// GetWindows provisions missing windows and returns every window for the month.
func (l *Ledger) GetWindows(ctx context.Context, month string) (map[domain.BackendID]domain.BudgetWindow, error) {
	for backend, limit := range l.limits {
		_, err := l.pool.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (backend, month_year, budget_limit)
				VALUES ($1, $2, $3)
				ON CONFLICT (backend, month_year) DO NOTHING`, l.budgetTable()),
			string(backend), month, limit,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: postgres provision %s/%s: %w", domain.ErrStorage, backend, month, err)
		}
	}

	rows, err := l.pool.Query(ctx,
		fmt.Sprintf(`SELECT backend, budget_limit, current_spend FROM %s WHERE month_year = $1`, l.budgetTable()),
		month,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres windows: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	windows := make(map[domain.BackendID]domain.BudgetWindow)
	for rows.Next() {
		var backend string
		window := domain.BudgetWindow{Month: month}
		if err := rows.Scan(&backend, &window.Limit, &window.Spend); err != nil {
			return nil, fmt.Errorf("%w: postgres scan window: %w", domain.ErrStorage, err)
		}
		window.Backend = domain.BackendID(backend)
		windows[window.Backend] = window
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: postgres windows: %w", domain.ErrStorage, err)
	}

	return windows, nil
}

// RecordSpend adds amount to a window in one statement.
func (l *Ledger) RecordSpend(ctx context.Context, backend domain.BackendID, month string, amount float64) error {
	tag, err := l.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET current_spend = current_spend + $1, updated_at = now()
			WHERE backend = $2 AND month_year = $3`, l.budgetTable()),
		amount, string(backend), month,
	)
	if err != nil {
		return fmt.Errorf("%w: postgres record spend: %w", domain.ErrStorage, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	limit, ok := l.limits[backend]
	if !ok {
		return nil
	}

	_, err = l.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (backend, month_year, budget_limit, current_spend)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (backend, month_year) DO UPDATE
			SET current_spend = %s.current_spend + EXCLUDED.current_spend, updated_at = now()`,
			l.budgetTable(), l.budgetTable()),
		string(backend), month, limit, amount,
	)
	if err != nil {
		return fmt.Errorf("%w: postgres record spend: %w", domain.ErrStorage, err)
	}
	return nil
}

// SetLimit creates or updates the ceiling of a window, keeping its spend.
func (l *Ledger) SetLimit(ctx context.Context, backend domain.BackendID, month string, limit float64) error {
	_, err := l.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (backend, month_year, budget_limit)
			VALUES ($1, $2, $3)
			ON CONFLICT (backend, month_year) DO UPDATE
			SET budget_limit = EXCLUDED.budget_limit, updated_at = now()`, l.budgetTable()),
		string(backend), month, limit,
	)
	if err != nil {
		return fmt.Errorf("%w: postgres set limit: %w", domain.ErrStorage, err)
	}
	return nil
}
