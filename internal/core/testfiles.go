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

// testGlob locates std-library test files under the Gerbil root.
const testGlob = "src/std/**/*-test.ss"

// TestFileAdapter converts std-library test files into API usage
// examples, keyed by the module they exercise.
type TestFileAdapter struct {
	root   string
	limits models.Limits
}

// NewTestFileAdapter creates the test-file adapter.
func NewTestFileAdapter(root string, limits models.Limits) *TestFileAdapter {
	return &TestFileAdapter{root: root, limits: limits}
}

// Name implements Adapter.
func (a *TestFileAdapter) Name() string { return "tests" }

// Extract keeps test files inside the configured size window; tiny
// files teach nothing and huge ones drown the context.
func (a *TestFileAdapter) Extract() ([]models.ExtractedPair, error) {
	matches, err := doublestar.Glob(os.DirFS(a.root), testGlob)
	if err != nil {
		return nil, nil
	}
	sort.Strings(matches)

	var pairs []models.ExtractedPair
	for _, rel := range matches {
		content, ok := readOptionalFile(filepath.Join(a.root, rel))
		if !ok {
			continue
		}
		if len(content) < a.limits.TestMin || len(content) > a.limits.TestMax {
			continue
		}

		// src/std/misc/list-test.ss -> :std/misc/list
		module := strings.Replace(rel, "src/std/", ":std/", 1)
		module = strings.TrimSuffix(module, "-test.ss")

		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("Show me test examples for the %s module in Gerbil Scheme.", module),
			Answer: fmt.Sprintf("Here are test examples from `%s`:\n\n```scheme\n%s\n```",
				rel, strings.TrimSpace(content)),
			Source: fmt.Sprintf("test:%s:full", rel),
		})
	}

	return pairs, nil
}
