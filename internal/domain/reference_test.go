package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
)

func TestReferencePage_Content(t *testing.T) {
	page := &domain.ReferencePage{
		Simple:   "short",
		Medium:   "overview",
		Detailed: "",
	}

	t.Run("should return the variant for the level", func(t *testing.T) {
		require.Equal(t, "short", page.Content(domain.SophisticationLow))
		require.Equal(t, "overview", page.Content(domain.SophisticationMedium))
	})

	t.Run("should fall back to medium when the variant is empty", func(t *testing.T) {
		require.Equal(t, "overview", page.Content(domain.SophisticationHigh))
	})
}

func TestParseSophistication(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Sophistication
	}{
		{"simple", domain.SophisticationLow},
		{"LOW", domain.SophisticationLow},
		{"detailed", domain.SophisticationHigh},
		{" high ", domain.SophisticationHigh},
		{"technical", domain.SophisticationHigh},
		{"medium", domain.SophisticationMedium},
		{"", domain.SophisticationMedium},
		{"unknown", domain.SophisticationMedium},
	}

	for _, tt := range tests {
		t.Run("should parse "+tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, domain.ParseSophistication(tt.in))
		})
	}
}

func TestIsClientError(t *testing.T) {
	require.True(t, domain.IsClientError(domain.ErrNotFound))
	require.True(t, domain.IsClientError(domain.ErrValidation))
	require.False(t, domain.IsClientError(domain.ErrStorage))
	require.False(t, domain.IsClientError(domain.ErrReferenceUnavailable))
}
