package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/config"
	"github.com/davidbz/policybot/internal/domain"
)

func TestWatchPricing(t *testing.T) {
	t.Run("should apply rewritten rates", func(t *testing.T) {
		path := writeFile(t, "models:\n  gpt-4o-mini:\n    input_per_1k: 0.001\n    output_per_1k: 0.002\n")
		table := domain.NewPricingTable(nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, config.ApplyPricing(ctx, path, table))
		require.NoError(t, config.WatchPricing(ctx, path, table))

		require.NoError(t, os.WriteFile(path,
			[]byte("models:\n  gpt-4o-mini:\n    input_per_1k: 0.005\n    output_per_1k: 0.006\n"), 0o600))

		require.Eventually(t, func() bool {
			pricing, err := table.GetPricing(ctx, "gpt-4o-mini")
			return err == nil && pricing.InputCostPer1K == 0.005
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("should keep rates when the rewrite is invalid", func(t *testing.T) {
		path := writeFile(t, "models:\n  gpt-4o-mini:\n    input_per_1k: 0.001\n    output_per_1k: 0.002\n")
		table := domain.NewPricingTable(nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, config.ApplyPricing(ctx, path, table))
		require.NoError(t, config.WatchPricing(ctx, path, table))

		require.NoError(t, os.WriteFile(path,
			[]byte("models:\n  gpt-4o-mini:\n    input_per_1k: -1\n    output_per_1k: 0.002\n"), 0o600))
		time.Sleep(100 * time.Millisecond)

		pricing, err := table.GetPricing(ctx, "gpt-4o-mini")
		require.NoError(t, err)
		require.InDelta(t, 0.001, pricing.InputCostPer1K, 1e-12)
	})

	t.Run("should do nothing without a file", func(t *testing.T) {
		require.NoError(t, config.WatchPricing(context.Background(), "", domain.NewPricingTable(nil)))
	})
}
