package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// PricingConfig contains model pricing information.
type PricingConfig struct {
	InputCostPer1K  float64 `yaml:"input_per_1k"`  // USD per 1K input tokens
	OutputCostPer1K float64 `yaml:"output_per_1k"` // USD per 1K output tokens
}

// CostCalculator calculates cost based on token usage.
type CostCalculator interface {
	// Calculate returns the total cost for a given model and usage.
	Calculate(ctx context.Context, model string, usage Usage) (float64, error)
}

// PricingTable maintains static per-model pricing. Safe for concurrent reads.
type PricingTable struct {
	mu     sync.RWMutex
	models map[string]PricingConfig
}

// NewPricingTable creates a pricing table seeded with the given entries.
func NewPricingTable(entries map[string]PricingConfig) *PricingTable {
	models := make(map[string]PricingConfig, len(entries))
	for model, pricing := range entries {
		models[model] = pricing
	}
	return &PricingTable{models: models}
}

// GetPricing returns pricing config for a model.
func (t *PricingTable) GetPricing(_ context.Context, model string) (PricingConfig, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	pricing, ok := t.models[model]
	if !ok {
		return PricingConfig{}, fmt.Errorf("%w: %s", ErrUnpriced, model)
	}
	return pricing, nil
}

// RegisterPricing adds or overrides pricing for a model.
func (t *PricingTable) RegisterPricing(_ context.Context, model string, config PricingConfig) error {
	if model == "" {
		return errors.New("model cannot be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.models[model] = config
	return nil
}
