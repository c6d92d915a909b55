package anthropic

import (
	"context"
	"fmt"

	"github.com/davidbz/policybot/internal/domain"
)

const (
	// Claude 3 Haiku pricing per 1K tokens
	haikuInputCostPer1K  = 0.00025
	haikuOutputCostPer1K = 0.00125

	// Claude 3.5 Haiku pricing per 1K tokens
	haiku35InputCostPer1K  = 0.0008
	haiku35OutputCostPer1K = 0.004

	// Claude 3.5 Sonnet pricing per 1K tokens
	sonnet35InputCostPer1K  = 0.003
	sonnet35OutputCostPer1K = 0.015
)

// RegisterPricing registers Anthropic model pricing with the pricing table.
func RegisterPricing(ctx context.Context, table *domain.PricingTable) error {
	models := map[string]domain.PricingConfig{
		"claude-3-haiku-20240307": {
			InputCostPer1K:  haikuInputCostPer1K,
			OutputCostPer1K: haikuOutputCostPer1K,
		},
		"claude-3-5-haiku-20241022": {
			InputCostPer1K:  haiku35InputCostPer1K,
			OutputCostPer1K: haiku35OutputCostPer1K,
		},
		"claude-3-5-sonnet-20241022": {
			InputCostPer1K:  sonnet35InputCostPer1K,
			OutputCostPer1K: sonnet35OutputCostPer1K,
		},
	}

	for model, pricing := range models {
		if err := table.RegisterPricing(ctx, model, pricing); err != nil {
			return fmt.Errorf("failed to register pricing for %s: %w", model, err)
		}
	}

	return nil
}
