package core

import (
	"regexp"
	"strings"
)

// APIEntry is one function or macro documentation block lifted from a
// reference markdown file.
type APIEntry struct {
	Name string
	Doc  string
}

// apiHeading matches a level-2 or level-3 heading introducing a Scheme
// identifier, optionally backquoted. The identifier class covers the
// symbol characters legal in Scheme names (e.g. "hash-ref!", "fx+").
var apiHeading = regexp.MustCompile("^#{2,3}\\s+`?([a-zA-Z_!?*<>=+\\-/][a-zA-Z0-9_!?*<>=+\\-/]*)`?\\s*$")

// anyAPIBoundary matches any level-2 or level-3 heading line, which
// terminates the body of the preceding API block.
var anyAPIBoundary = regexp.MustCompile(`^#{2,3}\s`)

// ScanAPIDoc extracts API documentation blocks from reference markdown.
// It walks the document twice: first collecting the boundary heading
// lines, then slicing each identifier heading's body up to the next
// boundary or end of document. Bodies shorter than minDoc are dropped.
func ScanAPIDoc(content string, minDoc int) []APIEntry {
	lines := strings.Split(content, "\n")

	// Pass 1: find all boundary headings.
	var boundaries []int
	for i, line := range lines {
		if anyAPIBoundary.MatchString(line) {
			boundaries = append(boundaries, i)
		}
	}

	// Pass 2: slice bodies between consecutive boundaries.
	var entries []APIEntry
	for bi, start := range boundaries {
		m := apiHeading.FindStringSubmatch(lines[start])
		if m == nil {
			continue
		}
		end := len(lines)
		if bi+1 < len(boundaries) {
			end = boundaries[bi+1]
		}
		doc := strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
		if len(doc) < minDoc {
			continue
		}
		entries = append(entries, APIEntry{Name: m[1], Doc: doc})
	}

	return entries
}

// ModuleLabel derives a Gerbil module label like ":std/misc/list" from
// a documentation file path, based on its position under the known
// top-level documentation roots. Returns "" when neither root appears.
func ModuleLabel(path string) string {
	if _, rest, ok := strings.Cut(path, "/std/"); ok {
		return ":std/" + strings.TrimSuffix(rest, ".md")
	}
	if _, rest, ok := strings.Cut(path, "/gerbil/"); ok {
		return ":gerbil/" + strings.TrimSuffix(rest, ".md")
	}
	return ""
}
