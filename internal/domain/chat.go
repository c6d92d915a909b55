package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/policybot/internal/observability"
)

// Clock returns the current time.
type Clock func() time.Time

// ChatService handles one chat turn end to end.
type ChatService struct {
	dispatcher *Dispatcher
	recorder   *UsageRecorder
	privacy    PrivacyPolicy
	now        Clock
}

// NewChatService creates a new chat service (DI constructor).
func NewChatService(dispatcher *Dispatcher, recorder *UsageRecorder, privacy PrivacyPolicy, now Clock) *ChatService {
	if now == nil {
		now = time.Now
	}
	return &ChatService{
		dispatcher: dispatcher,
		recorder:   recorder,
		privacy:    privacy,
		now:        now,
	}
}

// Chat answers a message and records its usage. When recording fails the
// computed response is still returned together with ErrUsageNotRecorded.
func (s *ChatService) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrValidation)
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx = observability.WithSession(ctx, sessionID)
	start := s.now()

	result, err := s.dispatcher.Dispatch(ctx, Message{Text: text})
	if err != nil {
		return nil, err
	}

	response := &ChatResponse{
		Response:            result.Text,
		SessionID:           sessionID,
		SophisticationLevel: result.Sophistication,
		BackendUsed:         result.Backend,
		Cost:                result.Cost,
		TokensUsed:          result.TokensUsed,
		ProcessingTimeMs:    s.now().Sub(start).Milliseconds(),
		Sources:             []string{},
		FollowUpSuggestions: []string{},
	}

	stored := *result
	stored.Text = s.privacy.Scrub(result.Text)

	turn := &Turn{
		SessionID: sessionID,
		ContactID: s.privacy.ContactID(req.ContactID, req.Consent),
		Consent:   req.Consent,
		Region:    region(req),
		Month:     MonthKey(start),
		UserText:  s.privacy.Scrub(text),
		Result:    &stored,
		CreatedAt: start,
	}

	if err := s.recorder.Record(ctx, turn); err != nil {
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return response, err
	}

	return response, nil
}

func region(req *ChatRequest) string {
	if req.Context == nil {
		return ""
	}
	return req.Context.Region
}
