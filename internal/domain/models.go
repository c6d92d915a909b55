package domain

import "time"

// BackendID identifies one interchangeable answering backend.
type BackendID string

const (
	// BackendOllama is the always-available local backend. It is never budget-gated.
	BackendOllama BackendID = "ollama"

	// BackendOpenAI is the mid-cost backend.
	BackendOpenAI BackendID = "openai"

	// BackendAnthropic is the premium backend.
	BackendAnthropic BackendID = "anthropic"
)

// FreeBackend is the terminal fallback of every routing decision.
const FreeBackend = BackendOllama

// Sophistication is the requested explanation depth.
type Sophistication string

const (
	SophisticationLow    Sophistication = "low"
	SophisticationMedium Sophistication = "medium"
	SophisticationHigh   Sophistication = "high"
)

// Message is an inbound user message. Token estimate and sophistication are derived.
type Message struct {
	Text string
}

// Tokens returns the coarse token estimate for the message.
func (m Message) Tokens() int {
	return EstimateTokens(m.Text)
}

// Sophistication returns the detected sophistication level.
func (m Message) Sophistication() Sophistication {
	return ClassifySophistication(m.Text)
}

// Usage tracks token consumption reported by a backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// BackendResponse is what a backend returns for a single query.
type BackendResponse struct {
	Text  string
	Model string
	Usage Usage
	Cost  float64
}

// BudgetWindow is the spend accounting scope for one backend in one calendar month.
type BudgetWindow struct {
	Backend BackendID `json:"backend"`
	Month   string    `json:"month"`
	Limit   float64   `json:"limit"`
	Spend   float64   `json:"spend"`
}

// HasRoom reports whether the window can admit another query.
// A window at exactly its limit is exhausted.
func (w BudgetWindow) HasRoom() bool {
	return w.Spend < w.Limit
}

// Remaining returns the unspent part of the limit, never negative.
func (w BudgetWindow) Remaining() float64 {
	if w.Spend >= w.Limit {
		return 0
	}
	return w.Limit - w.Spend
}

// DispatchResult is produced once per inbound message and owned by the caller.
type DispatchResult struct {
	Backend        BackendID
	Selected       BackendID
	Model          string
	Text           string
	TokensUsed     int
	Cost           float64
	Duration       time.Duration
	Sophistication Sophistication
	FellBack       bool
}

// ChatRequest is a chat turn as received from a client.
type ChatRequest struct {
	Message   string       `json:"message"`
	SessionID string       `json:"session_id,omitempty"`
	ContactID any          `json:"contact_id,omitempty"`
	Consent   bool         `json:"consent,omitempty"`
	Context   *ChatContext `json:"context,omitempty"`
}

// ChatContext carries optional client-side context.
type ChatContext struct {
	Region string `json:"region,omitempty"`
}

// ChatResponse is the reply to a chat turn.
type ChatResponse struct {
	Response            string         `json:"response"`
	SessionID           string         `json:"session_id"`
	SophisticationLevel Sophistication `json:"sophistication_level"`
	BackendUsed         BackendID      `json:"backend_used"`
	Cost                float64        `json:"cost"`
	TokensUsed          int            `json:"tokens_used"`
	ProcessingTimeMs    int64          `json:"processing_time_ms"`
	Sources             []string       `json:"sources"`
	FollowUpSuggestions []string       `json:"follow_up_suggestions"`
}

// Turn is one persisted exchange: the user message and the assistant answer.
type Turn struct {
	SessionID string
	ContactID string
	Consent   bool
	Region    string
	Month     string
	UserText  string
	Result    *DispatchResult
	CreatedAt time.Time
}

// CostSummary aggregates spend for one backend over a period.
type CostSummary struct {
	Backend    BackendID `json:"backend"`
	TotalCost  float64   `json:"total_cost"`
	QueryCount int       `json:"query_count"`
}

// ConversationStats aggregates conversations over a rolling window.
type ConversationStats struct {
	TotalConversations         int     `json:"total_conversations"`
	AvgMessagesPerConversation float64 `json:"avg_messages_per_conversation"`
	UniqueContacts             int     `json:"unique_contacts"`
	ConsentedConversations     int     `json:"consented_conversations"`
}

// AnalyticsPeriod selects the aggregation window for cost analytics.
type AnalyticsPeriod string

const (
	PeriodDay   AnalyticsPeriod = "day"
	PeriodMonth AnalyticsPeriod = "month"
)

// ParsePeriod maps a query value to a period. Anything other than "day" is a month.
func ParsePeriod(s string) AnalyticsPeriod {
	if s == string(PeriodDay) {
		return PeriodDay
	}
	return PeriodMonth
}

// MonthKey returns the budget window key for t.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
