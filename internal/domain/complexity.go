package domain

import "strings"

const charsPerToken = 4

// Phrases signalling a request for a simplified explanation.
//
//nolint:gochecknoglobals // fixed phrase table
var lowIndicators = []string{
	"explain like",
	"eli5",
	"simple terms",
	"what does",
	"what is",
	"how does",
	"in english",
	"basic",
}

// Phrases signalling a request for technical or analytical depth.
//
//nolint:gochecknoglobals // fixed phrase table
var highIndicators = []string{
	"implementation",
	"methodology",
	"framework",
	"analyze",
	"comparative",
	"empirical",
	"research",
	"study shows",
	"data suggests",
	"statistical",
}

// EstimateTokens approximates the token count as one token per four bytes.
func EstimateTokens(text string) int {
	return len(text) / charsPerToken
}

// ClassifySophistication detects the requested explanation depth from phrasing.
// Low wins only when it strictly outnumbers high; any high match wins otherwise.
func ClassifySophistication(text string) Sophistication {
	lower := strings.ToLower(text)

	lowCount := countMatches(lower, lowIndicators)
	highCount := countMatches(lower, highIndicators)

	switch {
	case lowCount > highCount:
		return SophisticationLow
	case highCount > 0:
		return SophisticationHigh
	default:
		return SophisticationMedium
	}
}

func countMatches(text string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			count++
		}
	}
	return count
}
