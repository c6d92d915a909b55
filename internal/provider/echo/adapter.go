// Package echo provides an offline stand-in for the free backend. It echoes the
// prompt back without network calls, giving deterministic answers for local
// development and tests.
package echo

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

const modelName = "echo4"

// Provider implements domain.Backend by echoing its input.
type Provider struct {
	id domain.BackendID
}

// NewProvider creates an echo backend registered under the free backend id.
// No configuration is required as this backend operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{id: domain.FreeBackend}
}

// ID returns the backend identifier.
func (p *Provider) ID() domain.BackendID {
	return p.id
}

// Configured is always true.
func (p *Provider) Configured() bool {
	return true
}

// Query echoes the system prompt and the user prompt at zero cost.
func (p *Provider) Query(ctx context.Context, prompt, systemPrompt string) (*domain.BackendResponse, error) {
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: echo: %w", domain.ErrBackend, ctx.Err())
	}

	if systemPrompt == "" {
		systemPrompt = domain.DefaultSystemPrompt
	}

	logger := observability.FromContext(ctx)
	logger.Debug("echoing request")

	content := buildEchoContent(systemPrompt, prompt)

	// Count tokens (simple word-based counting)
	promptTokens := countTokens(systemPrompt) + countTokens(prompt)
	completionTokens := countTokens(prompt)

	return &domain.BackendResponse{
		Text:  content,
		Model: modelName,
		Usage: domain.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
		Cost: 0,
	}, nil
}

// buildEchoContent constructs the echo response.
func buildEchoContent(systemPrompt, prompt string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[system]: %s\n", systemPrompt))
	builder.WriteString(fmt.Sprintf("[user]: %s\n", prompt))
	return builder.String()
}

// countTokens performs simple word-based token counting.
func countTokens(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Fields(content))
}
