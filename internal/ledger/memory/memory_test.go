package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/ledger/memory"
)

func TestLedger_GetWindows(t *testing.T) {
	ctx := context.Background()

	t.Run("should provision configured ceilings", func(t *testing.T) {
		ledger := memory.New(map[domain.BackendID]float64{
			domain.BackendOpenAI:    30,
			domain.BackendAnthropic: 0,
		})

		windows, err := ledger.GetWindows(ctx, "2026-10")

		require.NoError(t, err)
		require.Len(t, windows, 1)
		require.Equal(t, domain.BudgetWindow{
			Backend: domain.BackendOpenAI,
			Month:   "2026-10",
			Limit:   30,
		}, windows[domain.BackendOpenAI])
	})

	t.Run("should return copies", func(t *testing.T) {
		ledger := memory.New(map[domain.BackendID]float64{domain.BackendOpenAI: 30})

		windows, err := ledger.GetWindows(ctx, "2026-10")
		require.NoError(t, err)
		window := windows[domain.BackendOpenAI]
		window.Spend = 99
		windows[domain.BackendOpenAI] = window

		again, err := ledger.GetWindows(ctx, "2026-10")
		require.NoError(t, err)
		require.Zero(t, again[domain.BackendOpenAI].Spend)
	})

	t.Run("should start every month empty", func(t *testing.T) {
		ledger := memory.New(map[domain.BackendID]float64{domain.BackendOpenAI: 30})
		require.NoError(t, ledger.RecordSpend(ctx, domain.BackendOpenAI, "2026-09", 30))

		windows, err := ledger.GetWindows(ctx, "2026-10")

		require.NoError(t, err)
		require.True(t, windows[domain.BackendOpenAI].HasRoom())
	})
}

func TestLedger_RecordSpend(t *testing.T) {
	ctx := context.Background()

	t.Run("should equal the sum of concurrent increments", func(t *testing.T) {
		ledger := memory.New(map[domain.BackendID]float64{domain.BackendAnthropic: 50})

		var wg sync.WaitGroup
		for range 200 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = ledger.RecordSpend(ctx, domain.BackendAnthropic, "2026-10", 0.25)
			}()
		}
		wg.Wait()

		windows, err := ledger.GetWindows(ctx, "2026-10")
		require.NoError(t, err)
		require.InDelta(t, 50.0, windows[domain.BackendAnthropic].Spend, 1e-9)
		require.False(t, windows[domain.BackendAnthropic].HasRoom())
	})

	t.Run("should keep a zero ceiling exhausted as spend accrues", func(t *testing.T) {
		ledger := memory.New(map[domain.BackendID]float64{
			domain.BackendOpenAI:    0,
			domain.BackendAnthropic: 0,
		})

		for range 5 {
			require.NoError(t, ledger.RecordSpend(ctx, domain.BackendAnthropic, "2026-10", 100))
		}

		windows, err := ledger.GetWindows(ctx, "2026-10")
		require.NoError(t, err)
		require.Len(t, windows, 2)
		require.InDelta(t, 500.0, windows[domain.BackendAnthropic].Spend, 1e-9)
		require.False(t, windows[domain.BackendAnthropic].HasRoom())
		require.False(t, windows[domain.BackendOpenAI].HasRoom())
	})

	t.Run("should ignore backends without a ceiling", func(t *testing.T) {
		ledger := memory.New(nil)

		require.NoError(t, ledger.RecordSpend(ctx, domain.BackendOpenAI, "2026-10", 1))

		windows, err := ledger.GetWindows(ctx, "2026-10")
		require.NoError(t, err)
		require.Empty(t, windows)
	})
}

func TestLedger_SetLimit(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(map[domain.BackendID]float64{domain.BackendOpenAI: 30})

	require.NoError(t, ledger.RecordSpend(ctx, domain.BackendOpenAI, "2026-10", 12))
	require.NoError(t, ledger.SetLimit(ctx, domain.BackendOpenAI, "2026-10", 10))
	require.NoError(t, ledger.SetLimit(ctx, domain.BackendAnthropic, "2026-10", 5))

	windows, err := ledger.GetWindows(ctx, "2026-10")
	require.NoError(t, err)
	require.InDelta(t, 12.0, windows[domain.BackendOpenAI].Spend, 1e-9)
	require.InDelta(t, 10.0, windows[domain.BackendOpenAI].Limit, 1e-9)
	require.Zero(t, windows[domain.BackendOpenAI].Remaining())
	require.InDelta(t, 5.0, windows[domain.BackendAnthropic].Remaining(), 1e-9)
}
