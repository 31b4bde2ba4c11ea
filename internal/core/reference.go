package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gerbilkit/distill/pkg/models"
)

// ReferenceAdapter converts the official API reference tree: every
// markdown file recursively, as regular documentation entries plus
// per-function API entries.
type ReferenceAdapter struct {
	dir    string
	root   string
	limits models.Limits
}

// NewReferenceAdapter creates an adapter over the doc/reference tree.
func NewReferenceAdapter(dir, root string, limits models.Limits) *ReferenceAdapter {
	return &ReferenceAdapter{dir: dir, root: root, limits: limits}
}

// Name implements Adapter.
func (a *ReferenceAdapter) Name() string { return "reference" }

// Extract walks the reference tree recursively. A missing tree
// contributes nothing.
func (a *ReferenceAdapter) Extract() ([]models.ExtractedPair, error) {
	matches, err := doublestar.Glob(os.DirFS(a.dir), "**/*.md")
	if err != nil {
		return nil, nil
	}
	sort.Strings(matches)

	var pairs []models.ExtractedPair
	for _, m := range matches {
		path := filepath.Join(a.dir, m)
		pairs = append(pairs, convertMarkdownDoc(path, a.root, a.limits)...)
		pairs = append(pairs, a.extractAPIEntries(path)...)
	}
	return pairs, nil
}

// extractAPIEntries lifts individual function/macro documentation
// blocks out of one reference file.
func (a *ReferenceAdapter) extractAPIEntries(path string) []models.ExtractedPair {
	content, ok := readOptionalFile(path)
	if !ok {
		return nil
	}

	rel := relOrBase(a.root, path)
	module := ModuleLabel(path)

	var pairs []models.ExtractedPair
	for _, entry := range ScanAPIDoc(content, a.limits.APIMin) {
		question := fmt.Sprintf("What does `%s` do in Gerbil Scheme?", entry.Name)
		if module != "" {
			question += fmt.Sprintf(" (from %s)", module)
		}
		pairs = append(pairs, models.ExtractedPair{
			Question: question,
			Answer:   entry.Doc,
			Source:   fmt.Sprintf("api:%s:%s", rel, entry.Name),
		})
	}
	return pairs
}
