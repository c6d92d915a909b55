package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
)

func TestStandardCostCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	table := domain.NewPricingTable(map[string]domain.PricingConfig{
		"test-model": {InputCostPer1K: 0.01, OutputCostPer1K: 0.02},
	})

	calculator := domain.NewStandardCostCalculator(table)

	tests := []struct {
		name         string
		model        string
		usage        domain.Usage
		expectedCost float64
		expectError  bool
		errIs        error
	}{
		{
			name:         "calculate cost for known model",
			model:        "test-model",
			usage:        domain.Usage{PromptTokens: 1000, CompletionTokens: 500},
			expectedCost: 0.02,
		},
		{
			name:        "unknown model is unpriced",
			model:       "unknown-model",
			usage:       domain.Usage{PromptTokens: 100000, CompletionTokens: 50000},
			expectError: true,
			errIs:       domain.ErrUnpriced,
		},
		{
			name:        "empty model returns error",
			model:       "",
			expectError: true,
		},
		{
			name:         "zero tokens returns zero cost",
			model:        "test-model",
			expectedCost: 0,
		},
		{
			name:         "partial tokens calculation",
			model:        "test-model",
			usage:        domain.Usage{PromptTokens: 250, CompletionTokens: 100},
			expectedCost: 0.0045,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := calculator.Calculate(ctx, tt.model, tt.usage)

			if tt.expectError {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			require.InDelta(t, tt.expectedCost, cost, 1e-12)
		})
	}
}

func TestPricingConfig_Cost(t *testing.T) {
	t.Run("should match the published mid-tier rates", func(t *testing.T) {
		pricing := domain.PricingConfig{InputCostPer1K: 0.00015, OutputCostPer1K: 0.0006}

		cost := pricing.Cost(domain.Usage{PromptTokens: 1000, CompletionTokens: 1000})

		require.InDelta(t, 0.00075, cost, 1e-12)
	})

	t.Run("should match the published premium rates", func(t *testing.T) {
		pricing := domain.PricingConfig{InputCostPer1K: 0.00025, OutputCostPer1K: 0.00125}

		cost := pricing.Cost(domain.Usage{PromptTokens: 2000, CompletionTokens: 400})

		require.InDelta(t, 0.0005+0.0005, cost, 1e-12)
	})
}

func TestPricingTable_RegisterAndGet(t *testing.T) {
	ctx := context.Background()
	table := domain.NewPricingTable(nil)

	t.Run("should register and retrieve pricing", func(t *testing.T) {
		config := domain.PricingConfig{InputCostPer1K: 0.03, OutputCostPer1K: 0.06}

		require.NoError(t, table.RegisterPricing(ctx, "gpt-4", config))

		retrieved, err := table.GetPricing(ctx, "gpt-4")
		require.NoError(t, err)
		require.InDelta(t, config.InputCostPer1K, retrieved.InputCostPer1K, 0.0001)
		require.InDelta(t, config.OutputCostPer1K, retrieved.OutputCostPer1K, 0.0001)
	})

	t.Run("should fail for unknown model", func(t *testing.T) {
		_, err := table.GetPricing(ctx, "non-existent-model")
		require.ErrorIs(t, err, domain.ErrUnpriced)
		require.ErrorContains(t, err, "non-existent-model")
	})

	t.Run("should reject empty model", func(t *testing.T) {
		err := table.RegisterPricing(ctx, "", domain.PricingConfig{})
		require.Error(t, err)
	})

	t.Run("should overwrite existing pricing", func(t *testing.T) {
		require.NoError(t, table.RegisterPricing(ctx, "m", domain.PricingConfig{InputCostPer1K: 0.01}))
		require.NoError(t, table.RegisterPricing(ctx, "m", domain.PricingConfig{InputCostPer1K: 0.05}))

		retrieved, err := table.GetPricing(ctx, "m")
		require.NoError(t, err)
		require.InDelta(t, 0.05, retrieved.InputCostPer1K, 0.0001)
	})
}
