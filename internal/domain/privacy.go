package domain

import (
	"fmt"
	"regexp"
)

//nolint:gochecknoglobals // compiled once
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// optional country code, then area/exchange/line groups split by at least one separator
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?\(?\b\d{2,4}\)?[\s.-]?\d{3,4}[\s.-]\d{4}\b`)
)

// PrivacyPolicy controls what personal data reaches storage.
type PrivacyPolicy struct {
	// RequireConsent keeps the contact id out of storage unless consent was given.
	RequireConsent bool `env:"CHATBOT_REQUIRE_CONSENT" envDefault:"true"`

	// Anonymize masks e-mail addresses and phone numbers in stored text.
	Anonymize bool `env:"CHATBOT_ANONYMIZE_DATA" envDefault:"true"`
}

// ContactID returns the contact id to persist for a request.
func (p PrivacyPolicy) ContactID(raw any, consent bool) string {
	if raw == nil {
		return ""
	}
	if p.RequireConsent && !consent {
		return ""
	}

	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}

// Scrub returns text as it may be stored.
func (p PrivacyPolicy) Scrub(text string) string {
	if !p.Anonymize {
		return text
	}
	text = emailPattern.ReplaceAllString(text, "[email]")
	return phonePattern.ReplaceAllString(text, "[phone]")
}
