// Package openai provides the mid-cost backend on top of the official OpenAI SDK.
// It implements domain.Backend, converting between domain and SDK types and
// pricing each answer from the shared pricing table.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

// Provider implements domain.Backend for OpenAI.
type Provider struct {
	client     openai.Client
	model      string
	configured bool
	calculator domain.CostCalculator
}

// NewProvider creates a new OpenAI backend. A missing API key yields a backend
// that reports itself unavailable.
func NewProvider(config *Config, calculator domain.CostCalculator) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	return &Provider{
		client:     openai.NewClient(opts...),
		model:      config.Model,
		configured: config.APIKey != "",
		calculator: calculator,
	}
}

// ID returns the backend identifier.
func (p *Provider) ID() domain.BackendID {
	return domain.BackendOpenAI
}

// Configured reports whether an API key is present.
func (p *Provider) Configured() bool {
	return p.configured
}

// Query sends a chat completion and returns the answer with usage and cost.
func (p *Provider) Query(ctx context.Context, prompt, systemPrompt string) (*domain.BackendResponse, error) {
	if !p.configured {
		return nil, fmt.Errorf("%w: openai api key not configured", domain.ErrBackendUnavailable)
	}

	if systemPrompt == "" {
		systemPrompt = domain.DefaultSystemPrompt
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API", observability.String("model", p.model))

	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(prompt, systemPrompt))
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, fmt.Errorf("%w: openai: %w", domain.ErrBackend, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai returned no choices", domain.ErrBackend)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return p.toDomainResponse(ctx, resp)
}

// toSDKParams builds the SDK parameters for a single-turn chat.
func (p *Provider) toSDKParams(prompt, systemPrompt string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	}
}

// toDomainResponse converts the SDK response and prices it against the configured model.
func (p *Provider) toDomainResponse(ctx context.Context, resp *openai.ChatCompletion) (*domain.BackendResponse, error) {
	usage := domain.Usage{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
	}

	cost, err := p.calculator.Calculate(ctx, p.model, usage)
	if err != nil {
		return nil, fmt.Errorf("%w: openai cost: %w", domain.ErrBackend, err)
	}

	return &domain.BackendResponse{
		Text:  resp.Choices[0].Message.Content,
		Model: p.model,
		Usage: usage,
		Cost:  cost,
	}, nil
}
