package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty text", text: "", expected: 0},
		{name: "shorter than one token", text: "abc", expected: 0},
		{name: "exact multiple", text: "abcdefgh", expected: 2},
		{name: "truncates remainder", text: "What is a budget?", expected: 4},
		{name: "counts bytes not runes", text: "ééé", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.EstimateTokens(tt.text))
		})
	}
}

func TestClassifySophistication(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.Sophistication
	}{
		{name: "low indicator", text: "What is a budget?", expected: domain.SophisticationLow},
		{name: "case insensitive", text: "ELI5 the housing plan", expected: domain.SophisticationLow},
		{name: "high indicator", text: "Give me a comparative analysis", expected: domain.SophisticationHigh},
		{name: "no indicators", text: "Tell me about healthcare", expected: domain.SophisticationMedium},
		{name: "tie goes to high", text: "What is the methodology?", expected: domain.SophisticationHigh},
		{
			name:     "low strictly outnumbers high",
			text:     "What is the basic framework, in simple terms?",
			expected: domain.SophisticationLow,
		},
		{
			name:     "each phrase counts once",
			text:     "what is what is what is research research",
			expected: domain.SophisticationHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.ClassifySophistication(tt.text))
		})
	}

	t.Run("should be pure", func(t *testing.T) {
		text := "Analyze the empirical research on minimum wage"
		first := domain.ClassifySophistication(text)
		for range 100 {
			require.Equal(t, first, domain.ClassifySophistication(text))
		}
	})
}

func TestMessage_Derived(t *testing.T) {
	t.Run("should derive tokens and sophistication from text", func(t *testing.T) {
		msg := domain.Message{Text: strings.Repeat("x", 40) + " comparative"}

		require.Equal(t, 13, msg.Tokens())
		require.Equal(t, domain.SophisticationHigh, msg.Sophistication())
	})
}

func TestSystemPrompt(t *testing.T) {
	t.Run("should return a distinct template per level", func(t *testing.T) {
		low := domain.SystemPrompt(domain.SophisticationLow)
		medium := domain.SystemPrompt(domain.SophisticationMedium)
		high := domain.SystemPrompt(domain.SophisticationHigh)

		require.NotEqual(t, low, medium)
		require.NotEqual(t, medium, high)
		require.Contains(t, low, "Avoid jargon")
		require.Contains(t, high, "research citations")
		require.True(t, strings.HasPrefix(medium, domain.DefaultSystemPrompt))
	})

	t.Run("should default unknown levels to medium", func(t *testing.T) {
		require.Equal(t, domain.SystemPrompt(domain.SophisticationMedium), domain.SystemPrompt("expert"))
	})
}

func TestBudgetWindow_HasRoom(t *testing.T) {
	tests := []struct {
		name     string
		window   domain.BudgetWindow
		expected bool
	}{
		{name: "under limit", window: domain.BudgetWindow{Limit: 50, Spend: 10}, expected: true},
		{name: "exactly at limit", window: domain.BudgetWindow{Limit: 50, Spend: 50}, expected: false},
		{name: "over limit", window: domain.BudgetWindow{Limit: 50, Spend: 50.01}, expected: false},
		{name: "zero limit", window: domain.BudgetWindow{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.window.HasRoom())
		})
	}

	t.Run("should never report negative remaining", func(t *testing.T) {
		require.Zero(t, domain.BudgetWindow{Limit: 1, Spend: 2}.Remaining())
		require.InDelta(t, 0.5, domain.BudgetWindow{Limit: 1, Spend: 0.5}.Remaining(), 1e-12)
	})
}
