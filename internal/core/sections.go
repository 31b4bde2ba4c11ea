package core

import (
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// structuralHeadings are navigation headings that carry no teaching
// content and never become section entries.
var structuralHeadings = map[string]bool{
	"table of contents": true,
	"contents":          true,
	"readme":            true,
}

// SplitSections splits a markdown document into heading/body sections.
// A heading is any line starting with '#'. Text before the first
// heading becomes a section with an empty heading, which downstream
// consumers skip.
func SplitSections(content string) []models.Section {
	var sections []models.Section
	var heading string
	var body []string

	flush := func() {
		if heading != "" || len(body) > 0 {
			sections = append(sections, models.Section{
				Heading: heading,
				Body:    strings.TrimSpace(strings.Join(body, "\n")),
			})
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			flush()
			heading = strings.TrimSpace(strings.TrimLeft(line, "#"))
			body = nil
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// DocTitle returns the document title if the first non-blank line is a
// markdown heading, else the empty string.
func DocTitle(content string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	if !strings.HasPrefix(first, "#") {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(first, "#"))
}

// isStructuralHeading reports whether a heading is pure navigation.
func isStructuralHeading(heading string) bool {
	return structuralHeadings[strings.ToLower(heading)]
}

// truncateHeading bounds a heading for use inside a source identifier.
func truncateHeading(heading string, max int) string {
	if len(heading) <= max {
		return heading
	}
	// Back up to a rune boundary so the identifier stays valid UTF-8.
	cut := max
	for cut > 0 && heading[cut]&0xC0 == 0x80 {
		cut--
	}
	return heading[:cut]
}
