package domain

import (
	"context"
	"time"
)

// Backend is the uniform contract every answering backend implements.
type Backend interface {
	// ID returns the backend identifier.
	ID() BackendID

	// Configured reports whether the backend has the credentials it needs.
	Configured() bool

	// Query submits a prompt with system instructions and returns the answer,
	// token usage and cost.
	Query(ctx context.Context, prompt, systemPrompt string) (*BackendResponse, error)
}

// BackendRegistry manages the backends selected at startup.
type BackendRegistry interface {
	// Register adds a backend to the registry.
	Register(ctx context.Context, backend Backend) error

	// Get retrieves a backend by identifier.
	Get(ctx context.Context, id BackendID) (Backend, error)

	// Available reports whether a backend is registered and configured.
	Available(ctx context.Context, id BackendID) bool

	// Status returns the configured flag of every known backend.
	Status(ctx context.Context) map[BackendID]bool
}

// BudgetLedger reads and writes per-backend monthly spend.
type BudgetLedger interface {
	// GetWindows returns every configured window for the month.
	// Backends absent from the result are unconstrained.
	GetWindows(ctx context.Context, month string) (map[BackendID]BudgetWindow, error)

	// RecordSpend atomically increases the spend of a window.
	RecordSpend(ctx context.Context, backend BackendID, month string, amount float64) error
}

// BudgetAdmin provisions budget windows outside the request path.
type BudgetAdmin interface {
	BudgetLedger

	// SetLimit creates or updates the limit of a window, preserving its spend.
	SetLimit(ctx context.Context, backend BackendID, month string, limit float64) error
}

// Selector picks the backend for a message.
type Selector interface {
	// Select returns the backend for a message with the given token estimate.
	Select(ctx context.Context, tokens int) (BackendID, error)
}

// ConversationStore persists the conversation trail.
type ConversationStore interface {
	// SaveTurn stores the user message, the assistant answer and its cost entry.
	SaveTurn(ctx context.Context, turn *Turn) error
}

// AnalyticsStore answers aggregate queries over the persisted trail.
type AnalyticsStore interface {
	// CostsByBackend aggregates spend per backend for the period containing now.
	CostsByBackend(ctx context.Context, period AnalyticsPeriod) ([]CostSummary, error)

	// ConversationStats aggregates conversations started in the last 30 days.
	ConversationStats(ctx context.Context) (*ConversationStats, error)
}

// ReferenceLookup returns reference material tailored to a sophistication level.
type ReferenceLookup interface {
	// LookupReference returns the page text for the given level.
	LookupReference(ctx context.Context, pageID int, level Sophistication) (string, error)
}

// ReferenceSource serves, searches and refreshes reference pages.
type ReferenceSource interface {
	ReferenceLookup

	// Page returns a page and whether it came from the cache.
	Page(ctx context.Context, pageID int) (*ReferencePage, bool, error)

	// Search returns pages matching a free-text query.
	Search(ctx context.Context, query string) ([]ReferenceSearchResult, error)

	// Sync refreshes every policy page and returns the number cached.
	Sync(ctx context.Context) (int, error)

	// Invalidate drops one cached page, or all of them when pageID is 0.
	Invalidate(ctx context.Context, pageID int) (int, error)
}

// ReferenceCache stores processed reference pages with an expiry.
type ReferenceCache interface {
	// Get returns a cached page, or nil on a miss.
	Get(ctx context.Context, pageID int) (*ReferencePage, error)

	// Put stores a page for ttl.
	Put(ctx context.Context, page *ReferencePage, ttl time.Duration) error

	// Delete drops one page and returns the number removed.
	Delete(ctx context.Context, pageID int) (int, error)

	// Flush drops every page and returns the number removed.
	Flush(ctx context.Context) (int, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
