package domain

import (
	"context"
	"errors"
)

const tokensToPerK = 1000.0

// StandardCostCalculator implements token-based cost calculation.
type StandardCostCalculator struct {
	pricing *PricingTable
}

// NewStandardCostCalculator creates a new cost calculator.
func NewStandardCostCalculator(pricing *PricingTable) *StandardCostCalculator {
	return &StandardCostCalculator{
		pricing: pricing,
	}
}

// Calculate computes the total cost based on token usage and model pricing.
// A model without pricing is an error so paid spend is never recorded as free.
func (c *StandardCostCalculator) Calculate(
	ctx context.Context,
	model string,
	usage Usage,
) (float64, error) {
	if model == "" {
		return 0, errors.New("model cannot be empty")
	}

	pricing, err := c.pricing.GetPricing(ctx, model)
	if err != nil {
		return 0, err
	}

	return pricing.Cost(usage), nil
}

// Cost applies the per-1K rates to a usage report.
func (p PricingConfig) Cost(usage Usage) float64 {
	inputCost := float64(usage.PromptTokens) * p.InputCostPer1K / tokensToPerK
	outputCost := float64(usage.CompletionTokens) * p.OutputCostPer1K / tokensToPerK
	return inputCost + outputCost
}
