package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// headingIDMax bounds the heading portion of a section identifier.
const headingIDMax = 40

// readOptionalFile reads a file, treating any failure (missing file,
// permission error) as a recoverable empty contribution.
func readOptionalFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// relOrBase returns the path relative to root when the file lives
// under it, else just the base name.
func relOrBase(root, path string) string {
	if root != "" && strings.HasPrefix(path, root) {
		if rel, err := filepath.Rel(root, path); err == nil {
			return rel
		}
	}
	return filepath.Base(path)
}

// convertMarkdownDoc turns one markdown file into training pairs: a
// whole-document entry when the doc is small enough and opens with a
// heading, plus one entry per substantial section. Structural headings
// and thin sections are skipped; a missing or unreadable file
// contributes nothing.
func convertMarkdownDoc(path, root string, limits models.Limits) []models.ExtractedPair {
	content, ok := readOptionalFile(path)
	if !ok || strings.TrimSpace(content) == "" {
		return nil
	}

	sourceID := "doc:" + relOrBase(root, path)
	var pairs []models.ExtractedPair

	// Whole document as a single entry, only for reasonably sized docs.
	if len(content) < limits.DocMax {
		if title := DocTitle(content); title != "" {
			pairs = append(pairs, models.ExtractedPair{
				Question: fmt.Sprintf("Explain %s in Gerbil Scheme.", title),
				Answer:   strings.TrimSpace(content),
				Source:   sourceID + ":full",
			})
		}
	}

	// Section-level entries.
	for _, sec := range SplitSections(content) {
		if sec.Heading == "" || sec.Body == "" || len(sec.Body) < limits.SectionMin {
			continue
		}
		if isStructuralHeading(sec.Heading) {
			continue
		}
		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("Explain %s in Gerbil Scheme.", sec.Heading),
			Answer:   sec.Body,
			Source:   sourceID + ":" + truncateHeading(sec.Heading, headingIDMax),
		})
	}

	return pairs
}

// MarkdownDirAdapter converts every markdown file directly inside one
// directory. It backs both the resource docs and the guide docs.
type MarkdownDirAdapter struct {
	name   string
	dir    string
	root   string
	limits models.Limits
}

// NewMarkdownDirAdapter creates an adapter over *.md files in dir.
// root anchors the relative paths used in source identifiers.
func NewMarkdownDirAdapter(name, dir, root string, limits models.Limits) *MarkdownDirAdapter {
	return &MarkdownDirAdapter{name: name, dir: dir, root: root, limits: limits}
}

// Name implements Adapter.
func (a *MarkdownDirAdapter) Name() string { return a.name }

// Extract converts each markdown file in the directory. A missing
// directory silently contributes zero entries.
func (a *MarkdownDirAdapter) Extract() ([]models.ExtractedPair, error) {
	files, err := filepath.Glob(filepath.Join(a.dir, "*.md"))
	if err != nil {
		return nil, nil
	}
	sort.Strings(files)

	var pairs []models.ExtractedPair
	for _, f := range files {
		pairs = append(pairs, convertMarkdownDoc(f, a.root, a.limits)...)
	}
	return pairs, nil
}
