package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/davidbz/policybot/internal/domain"
)

const conversationWindowDays = 30

// CostsByBackend aggregates the cost ledger for the current UTC day or month.
func (s *Store) CostsByBackend(ctx context.Context, period domain.AnalyticsPeriod) ([]domain.CostSummary, error) {
	now := s.now().UTC()

	var since time.Time
	if period == domain.PeriodDay {
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		since = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT backend, SUM(cost_usd), COUNT(*)
		FROM costs
		WHERE created_at >= ?
		GROUP BY backend
		ORDER BY backend`,
		formatTime(since),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query costs: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	summaries := make([]domain.CostSummary, 0)
	for rows.Next() {
		var backend string
		var summary domain.CostSummary
		if err := rows.Scan(&backend, &summary.TotalCost, &summary.QueryCount); err != nil {
			return nil, fmt.Errorf("%w: scan costs: %w", domain.ErrStorage, err)
		}
		summary.Backend = domain.BackendID(backend)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate costs: %w", domain.ErrStorage, err)
	}

	return summaries, nil
}

// ConversationStats aggregates conversations started within the last 30 days.
func (s *Store) ConversationStats(ctx context.Context) (*domain.ConversationStats, error) {
	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -conversationWindowDays)

	var (
		total     int
		avg       sql.NullFloat64
		contacts  int
		consented sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			AVG(total_messages),
			COUNT(DISTINCT contact_id),
			SUM(CASE WHEN consent_given = 1 THEN 1 ELSE 0 END)
		FROM conversations
		WHERE started_at >= ?`,
		formatTime(since),
	).Scan(&total, &avg, &contacts, &consented)
	if err != nil {
		return nil, fmt.Errorf("%w: query conversation stats: %w", domain.ErrStorage, err)
	}

	return &domain.ConversationStats{
		TotalConversations:         total,
		AvgMessagesPerConversation: avg.Float64,
		UniqueContacts:             contacts,
		ConsentedConversations:     int(consented.Int64),
	}, nil
}
