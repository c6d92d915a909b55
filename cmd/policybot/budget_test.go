package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
)

func TestResolveMonth(t *testing.T) {
	t.Run("should accept an explicit month", func(t *testing.T) {
		month, err := resolveMonth("2026-02")

		require.NoError(t, err)
		require.Equal(t, "2026-02", month)
	})

	t.Run("should default to the current month", func(t *testing.T) {
		month, err := resolveMonth("")

		require.NoError(t, err)
		require.Len(t, month, 7)
	})

	t.Run("should reject a malformed month", func(t *testing.T) {
		_, err := resolveMonth("02/2026")

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestParseLimit(t *testing.T) {
	t.Run("should parse a paid backend limit", func(t *testing.T) {
		backend, limit, err := parseLimit("anthropic", "75.5")

		require.NoError(t, err)
		require.Equal(t, domain.BackendAnthropic, backend)
		require.InDelta(t, 75.5, limit, 1e-9)
	})

	t.Run("should refuse to budget the free backend", func(t *testing.T) {
		_, _, err := parseLimit("ollama", "10")

		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("should reject a negative limit", func(t *testing.T) {
		_, _, err := parseLimit("openai", "-1")

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPrintWindows(t *testing.T) {
	t.Run("should print one sorted row per window", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)

		err := printWindows(cmd, "2026-10", map[domain.BackendID]domain.BudgetWindow{
			domain.BackendOpenAI:    {Backend: domain.BackendOpenAI, Month: "2026-10", Limit: 30, Spend: 30},
			domain.BackendAnthropic: {Backend: domain.BackendAnthropic, Month: "2026-10", Limit: 50, Spend: 12.5},
		})

		require.NoError(t, err)
		lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
		require.Len(t, lines, 3)
		require.Contains(t, string(lines[0]), "REMAINING")
		require.Contains(t, string(lines[1]), "anthropic")
		require.Contains(t, string(lines[1]), "37.5000")
		require.Contains(t, string(lines[2]), "openai")
		require.Contains(t, string(lines[2]), "false")
	})

	t.Run("should say when nothing is budgeted", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)

		require.NoError(t, printWindows(cmd, "2026-10", nil))
		require.Equal(t, "No budget windows for 2026-10.\n", out.String())
	})
}
