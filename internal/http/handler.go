package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

const (
	serviceName     = "AI Policy Chatbot Router"
	maxRequestBytes = 1 << 20
)

// Handler handles HTTP requests.
type Handler struct {
	chat      *domain.ChatService
	registry  domain.BackendRegistry
	analytics domain.AnalyticsStore
	reference domain.ReferenceSource
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	chat *domain.ChatService,
	registry domain.BackendRegistry,
	analytics domain.AnalyticsStore,
	reference domain.ReferenceSource,
) *Handler {
	return &Handler{
		chat:      chat,
		registry:  registry,
		analytics: analytics,
		reference: reference,
	}
}

// HandleChat answers one chat turn.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	var req domain.ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid request body: %w", domain.ErrValidation, err))
		return
	}

	response, err := h.chat.Chat(ctx, &req)
	if err != nil {
		if response != nil {
			logger.Error("answer computed but usage not recorded",
				observability.String("backend", string(response.BackendUsed)),
				observability.Float64("cost", response.Cost),
				observability.Error(err))
		}
		writeError(w, r, err)
		return
	}

	logger.Info("chat answered",
		observability.String("backend", string(response.BackendUsed)),
		observability.String("sophistication", string(response.SophisticationLevel)),
		observability.Int("tokens_used", response.TokensUsed),
		observability.Float64("cost", response.Cost),
		observability.Int64("processing_time_ms", response.ProcessingTimeMs),
	)

	writeJSON(w, r, http.StatusOK, response)
}

// HandleHealth reports service status and which backends are configured.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":             "healthy",
		"service":            serviceName,
		"backends_available": h.registry.Status(r.Context()),
	})
}

// HandleCosts aggregates spend per backend for the current day or month.
func (h *Handler) HandleCosts(w http.ResponseWriter, r *http.Request) {
	period := domain.ParsePeriod(r.URL.Query().Get("period"))

	costs, err := h.analytics.CostsByBackend(r.Context(), period)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"period": period,
		"costs":  costs,
	})
}

// HandleConversations aggregates conversations over the last 30 days.
func (h *Handler) HandleConversations(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.ConversationStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

type referencePageResponse struct {
	PageID         int                   `json:"page_id"`
	Title          string                `json:"title"`
	Path           string                `json:"path"`
	Content        string                `json:"content"`
	Sophistication domain.Sophistication `json:"sophistication"`
	Tags           []string              `json:"tags"`
	Region         string                `json:"region,omitempty"`
	Cached         bool                  `json:"cached"`
}

// HandleReferencePage serves one reference page at the requested depth.
func (h *Handler) HandleReferencePage(w http.ResponseWriter, r *http.Request) {
	pageID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: page id must be an integer", domain.ErrValidation))
		return
	}

	level := domain.ParseSophistication(r.URL.Query().Get("sophistication"))

	page, cached, err := h.reference.Page(r.Context(), pageID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tags := page.Tags
	if tags == nil {
		tags = []string{}
	}

	writeJSON(w, r, http.StatusOK, referencePageResponse{
		PageID:         page.ID,
		Title:          page.Title,
		Path:           page.Path,
		Content:        page.Content(level),
		Sophistication: level,
		Tags:           tags,
		Region:         page.Region,
		Cached:         cached,
	})
}

// HandleReferenceSearch runs a live reference search.
func (h *Handler) HandleReferenceSearch(w http.ResponseWriter, r *http.Request) {
	results, err := h.reference.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"results": results,
		"source":  "live",
	})
}

// HandleReferenceSync refreshes every policy page.
func (h *Handler) HandleReferenceSync(w http.ResponseWriter, r *http.Request) {
	synced, err := h.reference.Sync(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":       "success",
		"pages_synced": synced,
	})
}

type invalidateRequest struct {
	PageID int `json:"page_id"`
}

// HandleReferenceInvalidate drops one cached page, or all of them without a page_id.
func (h *Handler) HandleReferenceInvalidate(w http.ResponseWriter, r *http.Request) {
	var req invalidateRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, fmt.Errorf("%w: invalid request body: %w", domain.ErrValidation, err))
		return
	}

	deleted, err := h.reference.Invalidate(r.Context(), req.PageID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":            "success",
		"pages_invalidated": deleted,
	})
}
