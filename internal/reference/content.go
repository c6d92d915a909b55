package reference

import "strings"

// Headings tried, in order, for each page variant.
//
//nolint:gochecknoglobals // fixed heading table
var (
	simpleHeadings   = []string{"## Simple Explanation", "## Basic"}
	mediumHeadings   = []string{"## Detailed Explanation", "## Overview"}
	detailedHeadings = []string{"## Technical Explanation", "## Advanced"}
)

const regionTagPrefix = "region:"

// Variants holds the three page renditions.
type Variants struct {
	Simple   string
	Medium   string
	Detailed string
}

// ExtractVariants splits page markdown by heading. The medium variant
// defaults to the whole page; the others default to empty.
func ExtractVariants(content string) Variants {
	medium := firstSection(content, mediumHeadings)
	if medium == "" {
		medium = content
	}

	return Variants{
		Simple:   firstSection(content, simpleHeadings),
		Medium:   medium,
		Detailed: firstSection(content, detailedHeadings),
	}
}

// ExtractSection returns the text under the first line that is a heading
// containing heading, up to the next heading of the same or a higher level.
func ExtractSection(content, heading string) string {
	target := strings.ToLower(heading)
	level := strings.Count(heading, "#")

	var captured []string
	capturing := false

	for _, line := range strings.Split(content, "\n") {
		isHeading := strings.HasPrefix(strings.TrimSpace(line), "#")

		if isHeading && strings.Contains(strings.ToLower(line), target) {
			capturing = true
			continue
		}

		if capturing && isHeading {
			current := len(line) - len(strings.TrimLeft(line, "#"))
			if current <= level {
				break
			}
		}

		if capturing {
			captured = append(captured, line)
		}
	}

	return strings.TrimSpace(strings.Join(captured, "\n"))
}

// RegionFromTags returns the value of the first "region:" tag.
func RegionFromTags(tags []string) string {
	for _, tag := range tags {
		if region, ok := strings.CutPrefix(tag, regionTagPrefix); ok {
			return region
		}
	}
	return ""
}

func firstSection(content string, headings []string) string {
	for _, heading := range headings {
		if section := ExtractSection(content, heading); section != "" {
			return section
		}
	}
	return ""
}
