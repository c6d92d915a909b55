// Package sqlite persists the conversation trail, the default budget ledger
// and the analytics queries in a single SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/davidbz/policybot/internal/domain"
)

// Store is the SQLite-backed conversation store, budget ledger and analytics source.
type Store struct {
	db     *sql.DB
	limits map[domain.BackendID]float64
	now    domain.Clock
}

// New opens (or creates) the database at dbPath and applies the schema.
// Limits are the monthly ceilings provisioned lazily for each new month.
func New(dbPath string, limits map[domain.BackendID]float64) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open chatbot db: %w", err)
	}

	// One connection serializes writers; SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		createBudgetTable,
		createConversationsTable,
		createMessagesTable,
		createCostsTable,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate chatbot db: %w", err)
		}
	}

	copied := make(map[domain.BackendID]float64, len(limits))
	for id, limit := range limits {
		copied[id] = limit
	}

	return &Store{db: db, limits: copied, now: time.Now}, nil
}

// WithClock replaces the clock used for timestamps and analytics windows.
func (s *Store) WithClock(now domain.Clock) *Store {
	s.now = now
	return s
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTurn writes the conversation upsert, both messages and the cost row in
// one transaction.
func (s *Store) SaveTurn(ctx context.Context, turn *domain.Turn) error {
	if turn == nil || turn.Result == nil {
		return fmt.Errorf("%w: turn cannot be nil", domain.ErrValidation)
	}

	createdAt := turn.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	stamp := formatTime(createdAt)
	result := turn.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin turn: %w", domain.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	var conversationID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO conversations
			(session_id, contact_id, consent_given, detected_sophistication, region, started_at, last_activity)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			total_messages = total_messages + 1,
			detected_sophistication = excluded.detected_sophistication,
			last_activity = excluded.last_activity
		RETURNING id`,
		turn.SessionID, nullString(turn.ContactID), turn.Consent, string(result.Sophistication),
		nullString(turn.Region), stamp, stamp,
	).Scan(&conversationID)
	if err != nil {
		return fmt.Errorf("%w: upsert conversation: %w", domain.ErrStorage, err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO messages (conversation_id, message_type, message_text, created_at)
		VALUES (?, 'user', ?, ?)`,
		conversationID, turn.UserText, stamp,
	); err != nil {
		return fmt.Errorf("%w: insert user message: %w", domain.ErrStorage, err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO messages
			(conversation_id, message_type, message_text, response_sophistication,
			 ai_backend, cost, tokens_used, processing_time_ms, created_at)
		VALUES (?, 'assistant', ?, ?, ?, ?, ?, ?, ?)`,
		conversationID, result.Text, string(result.Sophistication), string(result.Backend),
		result.Cost, result.TokensUsed, result.Duration.Milliseconds(), stamp,
	)
	if err != nil {
		return fmt.Errorf("%w: insert assistant message: %w", domain.ErrStorage, err)
	}

	if result.Cost > 0 {
		messageID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: assistant message id: %w", domain.ErrStorage, err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO costs (message_id, backend, cost_usd, tokens_used, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			messageID, string(result.Backend), result.Cost, result.TokensUsed, stamp,
		); err != nil {
			return fmt.Errorf("%w: insert cost: %w", domain.ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit turn: %w", domain.ErrStorage, err)
	}

	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
