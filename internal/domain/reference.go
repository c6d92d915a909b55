package domain

import (
	"strings"
	"time"
)

// ReferencePage is a policy page split into per-sophistication variants.
type ReferencePage struct {
	ID        int       `json:"page_id"`
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Simple    string    `json:"-"`
	Medium    string    `json:"-"`
	Detailed  string    `json:"-"`
	Tags      []string  `json:"tags"`
	Region    string    `json:"region,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Content returns the variant for a level. An empty simple or detailed
// variant falls back to the medium one.
func (p *ReferencePage) Content(level Sophistication) string {
	var content string
	switch level {
	case SophisticationLow:
		content = p.Simple
	case SophisticationHigh:
		content = p.Detailed
	case SophisticationMedium:
	}

	if content == "" {
		return p.Medium
	}
	return content
}

// ReferenceSearchResult is one hit of a reference search.
type ReferenceSearchResult struct {
	PageID  int    `json:"page_id"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Excerpt string `json:"excerpt"`
}

// ParseSophistication maps a query value to a level. Both the level names
// and the page variant names are accepted; anything else is medium.
func ParseSophistication(s string) Sophistication {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "simple":
		return SophisticationLow
	case "high", "detailed", "technical":
		return SophisticationHigh
	default:
		return SophisticationMedium
	}
}
