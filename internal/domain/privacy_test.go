package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
)

func TestPrivacyPolicy_ContactID(t *testing.T) {
	tests := []struct {
		name     string
		policy   domain.PrivacyPolicy
		raw      any
		consent  bool
		expected string
	}{
		{name: "no contact", policy: domain.PrivacyPolicy{}, raw: nil, expected: ""},
		{name: "consent required and given", policy: domain.PrivacyPolicy{RequireConsent: true}, raw: "42", consent: true, expected: "42"},
		{name: "consent required and missing", policy: domain.PrivacyPolicy{RequireConsent: true}, raw: "42", expected: ""},
		{name: "consent not required", policy: domain.PrivacyPolicy{}, raw: "42", expected: "42"},
		{name: "numeric json id", policy: domain.PrivacyPolicy{}, raw: float64(1234), expected: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.policy.ContactID(tt.raw, tt.consent))
		})
	}
}

func TestPrivacyPolicy_Scrub(t *testing.T) {
	t.Run("should mask e-mail addresses and phone numbers", func(t *testing.T) {
		policy := domain.PrivacyPolicy{Anonymize: true}

		scrubbed := policy.Scrub("Reach me at jane.doe@example.org or +1 (555) 123-4567 please")

		require.Equal(t, "Reach me at [email] or [phone] please", scrubbed)
	})

	t.Run("should leave short numbers alone", func(t *testing.T) {
		policy := domain.PrivacyPolicy{Anonymize: true}

		require.Equal(t, "Budget for 2026 is 40 percent", policy.Scrub("Budget for 2026 is 40 percent"))
	})

	t.Run("should mask grouped phone formats", func(t *testing.T) {
		policy := domain.PrivacyPolicy{Anonymize: true}

		for _, phone := range []string{"555.123.4567", "555-123-4567", "+44 20 7946 0958", "(555) 123 4567"} {
			require.Equal(t, "call [phone] today", policy.Scrub("call "+phone+" today"), phone)
		}
	})

	t.Run("should leave year ranges dates and amounts alone", func(t *testing.T) {
		policy := domain.PrivacyPolicy{Anonymize: true}

		for _, text := range []string{
			"The 2023-2024 housing plan",
			"Allocated 450000000 for transit",
			"Effective 2024-10-17",
			"A $1,250,000 grant",
		} {
			require.Equal(t, text, policy.Scrub(text))
		}
	})

	t.Run("should keep text when anonymization is off", func(t *testing.T) {
		policy := domain.PrivacyPolicy{}

		require.Equal(t, "jane@example.org", policy.Scrub("jane@example.org"))
	})
}
