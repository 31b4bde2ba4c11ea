package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gerbilkit/distill/pkg/models"
)

// TutorialAdapter converts the tutorial material: every tutorial
// source file, described via the per-directory catalog, and every
// tutorial narrative document with both a whole-walkthrough entry and
// the full markdown section policy.
type TutorialAdapter struct {
	srcDir  string
	docDir  string
	root    string
	limits  models.Limits
	dirDesc map[string]string
}

// NewTutorialAdapter creates the tutorial adapter. dirDesc maps
// tutorial directory names to human-readable descriptions.
func NewTutorialAdapter(srcDir, docDir, root string, limits models.Limits, dirDesc map[string]string) *TutorialAdapter {
	return &TutorialAdapter{srcDir: srcDir, docDir: docDir, root: root, limits: limits, dirDesc: dirDesc}
}

// Name implements Adapter.
func (a *TutorialAdapter) Name() string { return "tutorials" }

// Extract converts tutorial sources then tutorial docs. Missing
// directories contribute nothing.
func (a *TutorialAdapter) Extract() ([]models.ExtractedPair, error) {
	var pairs []models.ExtractedPair
	pairs = append(pairs, a.extractSources()...)
	pairs = append(pairs, a.extractDocs()...)
	return pairs, nil
}

func (a *TutorialAdapter) extractSources() []models.ExtractedPair {
	matches, err := doublestar.Glob(os.DirFS(a.srcDir), "**/*.ss")
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	var pairs []models.ExtractedPair
	for _, m := range matches {
		// The leading path element names the tutorial; fall back to it
		// verbatim when the catalog has no description.
		topDir, _, _ := strings.Cut(m, "/")
		desc := topDir
		if d, ok := a.dirDesc[topDir]; ok {
			desc = d
		}
		pairs = append(pairs, convertSourceFile(filepath.Join(a.srcDir, m), a.root, desc, a.limits)...)
	}
	return pairs
}

func (a *TutorialAdapter) extractDocs() []models.ExtractedPair {
	files, err := filepath.Glob(filepath.Join(a.docDir, "*.md"))
	if err != nil {
		return nil
	}
	sort.Strings(files)

	var pairs []models.ExtractedPair
	for _, f := range files {
		pairs = append(pairs, a.convertTutorialDoc(f)...)
	}
	return pairs
}

// convertTutorialDoc emits a whole-walkthrough entry for tutorials
// under the (larger) tutorial size cutoff, then applies the regular
// markdown policy on top.
func (a *TutorialAdapter) convertTutorialDoc(path string) []models.ExtractedPair {
	content, ok := readOptionalFile(path)
	if !ok || strings.TrimSpace(content) == "" {
		return nil
	}

	var pairs []models.ExtractedPair
	if len(content) < a.limits.TutorialMax {
		if title := DocTitle(content); title != "" {
			rel := relOrBase(a.root, path)
			pairs = append(pairs, models.ExtractedPair{
				Question: fmt.Sprintf("Walk me through building %s in Gerbil Scheme.", strings.ToLower(title)),
				Answer:   strings.TrimSpace(content),
				Source:   fmt.Sprintf("tutorial:%s:full", rel),
			})
		}
	}

	pairs = append(pairs, convertMarkdownDoc(path, a.root, a.limits)...)
	return pairs
}

// convertSourceFile turns one source file into a single example
// implementation entry. Empty or trivially small files are skipped.
func convertSourceFile(path, root, description string, limits models.Limits) []models.ExtractedPair {
	content, ok := readOptionalFile(path)
	if !ok {
		return nil
	}
	if strings.TrimSpace(content) == "" || len(content) < limits.SourceMin {
		return nil
	}

	rel := relOrBase(root, path)
	if description == "" {
		description = fmt.Sprintf("the %s module", filepath.Base(path))
	}

	return []models.ExtractedPair{{
		Question: fmt.Sprintf("Show me an example implementation of %s in Gerbil Scheme.", description),
		Answer: fmt.Sprintf("Here's the implementation from `%s`:\n\n```scheme\n%s\n```",
			rel, strings.TrimSpace(content)),
		Source: fmt.Sprintf("source:%s:full", rel),
	}}
}
