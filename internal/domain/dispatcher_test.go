package domain_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/mocks"
)

// fakeRegistry is a hand-written BackendRegistry for dispatcher tests.
type fakeRegistry struct {
	backends map[domain.BackendID]domain.Backend
}

func newFakeRegistry(backends ...domain.Backend) *fakeRegistry {
	r := &fakeRegistry{backends: make(map[domain.BackendID]domain.Backend)}
	for _, b := range backends {
		r.backends[b.ID()] = b
	}
	return r
}

func (r *fakeRegistry) Register(_ context.Context, backend domain.Backend) error {
	r.backends[backend.ID()] = backend
	return nil
}

func (r *fakeRegistry) Get(_ context.Context, id domain.BackendID) (domain.Backend, error) {
	backend, ok := r.backends[id]
	if !ok {
		return nil, fmt.Errorf("backend %s not registered", id)
	}
	return backend, nil
}

func (r *fakeRegistry) Available(_ context.Context, id domain.BackendID) bool {
	backend, ok := r.backends[id]
	return ok && backend.Configured()
}

func (r *fakeRegistry) Status(_ context.Context) map[domain.BackendID]bool {
	status := make(map[domain.BackendID]bool, len(r.backends))
	for id, b := range r.backends {
		status[id] = b.Configured()
	}
	return status
}

// fakeBackend answers with a fixed response or error and counts calls.
type fakeBackend struct {
	id       domain.BackendID
	response *domain.BackendResponse
	err      error
	calls    int
	prompts  []string
}

func (b *fakeBackend) ID() domain.BackendID { return b.id }

func (b *fakeBackend) Configured() bool { return true }

func (b *fakeBackend) Query(ctx context.Context, _ string, systemPrompt string) (*domain.BackendResponse, error) {
	b.calls++
	b.prompts = append(b.prompts, systemPrompt)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.response, nil
}

func freeBackend() *fakeBackend {
	return &fakeBackend{
		id: domain.BackendOllama,
		response: &domain.BackendResponse{
			Text:  "free answer",
			Model: "llama2",
			Usage: domain.Usage{PromptTokens: 4, CompletionTokens: 6, TotalTokens: 10},
		},
	}
}

func midBackend() *fakeBackend {
	return &fakeBackend{
		id: domain.BackendOpenAI,
		response: &domain.BackendResponse{
			Text:  "mid answer",
			Model: "gpt-4o-mini",
			Usage: domain.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
			Cost:  0.000045,
		},
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("should answer from the selected backend", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free, mid := freeBackend(), midBackend()
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free, mid), nil)

		msg := domain.Message{Text: strings.Repeat("policy ", 20)}
		selector.EXPECT().Select(mock.Anything, msg.Tokens()).Return(domain.BackendOpenAI, nil)

		result, err := dispatcher.Dispatch(context.Background(), msg)

		require.NoError(t, err)
		require.Equal(t, domain.BackendOpenAI, result.Backend)
		require.Equal(t, domain.BackendOpenAI, result.Selected)
		require.False(t, result.FellBack)
		require.Equal(t, "mid answer", result.Text)
		require.Equal(t, 150, result.TokensUsed)
		require.InDelta(t, 0.000045, result.Cost, 1e-12)
		require.Equal(t, 0, free.calls)
	})

	t.Run("should fall back once to the free backend on backend error", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		events := mocks.NewMockEventPublisher(t)
		free, mid := freeBackend(), midBackend()
		mid.err = fmt.Errorf("%w: status 502", domain.ErrBackend)
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free, mid), events)

		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendOpenAI, nil)
		events.EXPECT().
			Publish(mock.Anything, "dispatch.fallback", mock.MatchedBy(func(data map[string]interface{}) bool {
				return data["selected"] == "openai" && data["fallback"] == "ollama"
			})).
			Return()

		result, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: "Compare these two tax proposals"})

		require.NoError(t, err)
		require.Equal(t, domain.BackendOllama, result.Backend)
		require.Equal(t, domain.BackendOpenAI, result.Selected)
		require.True(t, result.FellBack)
		require.Equal(t, "free answer", result.Text)
		require.Zero(t, result.Cost)
		require.Equal(t, 1, mid.calls)
		require.Equal(t, 1, free.calls)
	})

	t.Run("should fall back when the selected backend is unavailable", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free := freeBackend()
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free), nil)

		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendAnthropic, nil)

		result, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: "anything"})

		require.NoError(t, err)
		require.Equal(t, domain.BackendOllama, result.Backend)
		require.Equal(t, 1, free.calls)
	})

	t.Run("should fail with both causes when the fallback also fails", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free, mid := freeBackend(), midBackend()
		mid.err = fmt.Errorf("%w: timeout", domain.ErrBackend)
		free.err = errors.New("connection refused")
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free, mid), nil)

		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendOpenAI, nil)

		result, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: "question"})

		require.Nil(t, result)
		var dispatchErr *domain.DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		require.Equal(t, domain.BackendOpenAI, dispatchErr.Selected)
		require.ErrorIs(t, err, domain.ErrBackend)
		require.Contains(t, err.Error(), "connection refused")
		require.Equal(t, 1, free.calls)
	})

	t.Run("should not retry the free backend against itself", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free := freeBackend()
		free.err = fmt.Errorf("%w: status 500", domain.ErrBackend)
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free), nil)

		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendOllama, nil)

		_, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: "hi"})

		require.ErrorIs(t, err, domain.ErrBackend)
		require.Equal(t, 1, free.calls)
	})

	t.Run("should pass the system prompt matching the sophistication", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free := freeBackend()
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free), nil)

		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendOllama, nil)

		result, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: "What is a budget?"})

		require.NoError(t, err)
		require.Equal(t, domain.SophisticationLow, result.Sophistication)
		require.Equal(t, []string{domain.SystemPrompt(domain.SophisticationLow)}, free.prompts)
	})

	t.Run("should surface selection failures without calling a backend", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free := freeBackend()
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free), nil)

		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendID(""), domain.ErrStorage)

		_, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: "a long enough question"})

		require.ErrorIs(t, err, domain.ErrStorage)
		require.Equal(t, 0, free.calls)
	})

	t.Run("should keep calling backends after the caller cancels", func(t *testing.T) {
		selector := mocks.NewMockSelector(t)
		free := freeBackend()
		dispatcher := domain.NewDispatcher(selector, newFakeRegistry(free), nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		selector.EXPECT().Select(mock.Anything, mock.Anything).Return(domain.BackendOllama, nil)

		result, err := dispatcher.Dispatch(ctx, domain.Message{Text: "hello there"})

		require.NoError(t, err)
		require.Equal(t, "free answer", result.Text)
	})

	t.Run("should reject an empty message", func(t *testing.T) {
		dispatcher := domain.NewDispatcher(mocks.NewMockSelector(t), newFakeRegistry(), nil)

		_, err := dispatcher.Dispatch(context.Background(), domain.Message{Text: ""})

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}
