package sqlite

import (
	"context"
	"fmt"

	"github.com/davidbz/policybot/internal/domain"
)

// GetWindows returns the budget windows for a month, provisioning any missing
// window for backends with a configured ceiling.
func (s *Store) GetWindows(ctx context.Context, month string) (map[domain.BackendID]domain.BudgetWindow, error) {
	stamp := formatTime(s.now())
	for backend, limit := range s.limits {
		if _, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO budget_tracking (backend, month_year, budget_limit, current_spend, updated_at)
			VALUES (?, ?, ?, 0, ?)`,
			string(backend), month, limit, stamp,
		); err != nil {
			return nil, fmt.Errorf("%w: provision window %s/%s: %w", domain.ErrStorage, backend, month, err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT backend, budget_limit, current_spend
		FROM budget_tracking
		WHERE month_year = ?`,
		month,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query windows: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	windows := make(map[domain.BackendID]domain.BudgetWindow)
	for rows.Next() {
		var backend string
		window := domain.BudgetWindow{Month: month}
		if err := rows.Scan(&backend, &window.Limit, &window.Spend); err != nil {
			return nil, fmt.Errorf("%w: scan window: %w", domain.ErrStorage, err)
		}
		window.Backend = domain.BackendID(backend)
		windows[window.Backend] = window
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate windows: %w", domain.ErrStorage, err)
	}

	return windows, nil
}

// RecordSpend adds amount to a window in one statement. A missing window is
// created only for backends with a configured ceiling.
func (s *Store) RecordSpend(ctx context.Context, backend domain.BackendID, month string, amount float64) error {
	stamp := formatTime(s.now())

	res, err := s.db.ExecContext(ctx, `
		UPDATE budget_tracking
		SET current_spend = current_spend + ?, updated_at = ?
		WHERE backend = ? AND month_year = ?`,
		amount, stamp, string(backend), month,
	)
	if err != nil {
		return fmt.Errorf("%w: record spend: %w", domain.ErrStorage, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: record spend: %w", domain.ErrStorage, err)
	}
	if affected > 0 {
		return nil
	}

	limit, ok := s.limits[backend]
	if !ok {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_tracking (backend, month_year, budget_limit, current_spend, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(backend, month_year) DO UPDATE SET
			current_spend = current_spend + excluded.current_spend,
			updated_at = excluded.updated_at`,
		string(backend), month, limit, amount, stamp,
	); err != nil {
		return fmt.Errorf("%w: record spend: %w", domain.ErrStorage, err)
	}

	return nil
}

// SetLimit creates or updates the ceiling of a window, keeping its spend.
func (s *Store) SetLimit(ctx context.Context, backend domain.BackendID, month string, limit float64) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_tracking (backend, month_year, budget_limit, current_spend, updated_at)
		VALUES (?, ?, ?, 0, ?)
		ON CONFLICT(backend, month_year) DO UPDATE SET
			budget_limit = excluded.budget_limit,
			updated_at = excluded.updated_at`,
		string(backend), month, limit, formatTime(s.now()),
	); err != nil {
		return fmt.Errorf("%w: set limit: %w", domain.ErrStorage, err)
	}
	return nil
}
