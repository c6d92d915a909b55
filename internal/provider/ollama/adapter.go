// Package ollama provides the free local backend. It is always available and
// never budget-gated.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

// Provider implements domain.Backend for a local Ollama server.
type Provider struct {
	client *api.Client
	model  string
}

// NewProvider creates a new Ollama backend talking to config.Host.
func NewProvider(config *Config) (*Provider, error) {
	base, err := url.Parse(strings.TrimRight(config.Host, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", config.Host, err)
	}

	httpClient := &http.Client{Timeout: time.Duration(config.Timeout) * time.Second}

	return &Provider{
		client: api.NewClient(base, httpClient),
		model:  config.Model,
	}, nil
}

// ID returns the backend identifier.
func (p *Provider) ID() domain.BackendID {
	return domain.BackendOllama
}

// Configured is always true; the local backend needs no credential.
func (p *Provider) Configured() bool {
	return true
}

// Query generates an answer. Cost is always zero and missing token counts read as zero.
func (p *Provider) Query(ctx context.Context, prompt, systemPrompt string) (*domain.BackendResponse, error) {
	if systemPrompt == "" {
		systemPrompt = domain.DefaultSystemPrompt
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Ollama", observability.String("model", p.model))

	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: &stream,
	}

	var text strings.Builder
	var metrics api.Metrics
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		text.WriteString(resp.Response)
		// the final chunk carries the counts
		metrics = resp.Metrics
		return nil
	})
	if err != nil {
		logger.Error("Ollama call failed", observability.Error(err))
		return nil, fmt.Errorf("%w: ollama: %w", domain.ErrBackend, err)
	}

	return &domain.BackendResponse{
		Text:  text.String(),
		Model: p.model,
		Usage: domain.Usage{
			PromptTokens:     metrics.PromptEvalCount,
			CompletionTokens: metrics.EvalCount,
			TotalTokens:      metrics.PromptEvalCount + metrics.EvalCount,
		},
		Cost: 0,
	}, nil
}
