// Package anthropic provides the premium backend on top of the official Anthropic SDK.
package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

// Provider implements domain.Backend for Anthropic.
type Provider struct {
	client     anthropic.Client
	model      string
	maxTokens  int64
	configured bool
	calculator domain.CostCalculator
}

// NewProvider creates a new Anthropic backend. A missing API key yields a
// backend that reports itself unavailable.
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
		client:     anthropic.NewClient(opts...),
		model:      config.Model,
		maxTokens:  int64(config.MaxTokens),
		configured: config.APIKey != "",
		calculator: calculator,
	}
}

// ID returns the backend identifier.
func (p *Provider) ID() domain.BackendID {
	return domain.BackendAnthropic
}

// Configured reports whether an API key is present.
func (p *Provider) Configured() bool {
	return p.configured
}

// Query sends a Messages API request and returns the answer with usage and cost.
func (p *Provider) Query(ctx context.Context, prompt, systemPrompt string) (*domain.BackendResponse, error) {
	if !p.configured {
		return nil, fmt.Errorf("%w: anthropic api key not configured", domain.ErrBackendUnavailable)
	}

	if systemPrompt == "" {
		systemPrompt = domain.DefaultSystemPrompt
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Anthropic API", observability.String("model", p.model))

	resp, err := p.client.Messages.New(ctx, p.toSDKParams(prompt, systemPrompt))
	if err != nil {
		logger.Error("Anthropic API call failed", observability.Error(err))
		return nil, fmt.Errorf("%w: anthropic: %w", domain.ErrBackend, err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("%w: anthropic returned no content", domain.ErrBackend)
	}

	logger.Debug("Anthropic API call succeeded",
		observability.Int64("input_tokens", resp.Usage.InputTokens),
		observability.Int64("output_tokens", resp.Usage.OutputTokens),
	)

	return p.toDomainResponse(ctx, resp)
}

func (p *Provider) toSDKParams(prompt, systemPrompt string) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
}

// toDomainResponse joins the text blocks and prices the usage against the configured model.
func (p *Provider) toDomainResponse(ctx context.Context, resp *anthropic.Message) (*domain.BackendResponse, error) {
	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	usage := domain.Usage{
		PromptTokens:     int(resp.Usage.InputTokens),
		CompletionTokens: int(resp.Usage.OutputTokens),
		TotalTokens:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
	}

	cost, err := p.calculator.Calculate(ctx, p.model, usage)
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic cost: %w", domain.ErrBackend, err)
	}

	return &domain.BackendResponse{
		Text:  text.String(),
		Model: p.model,
		Usage: usage,
		Cost:  cost,
	}, nil
}
