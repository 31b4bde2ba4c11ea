package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// GambitAdapter converts Gambit example scripts into training pairs
// about FFI and low-level features, grouped by example directory.
type GambitAdapter struct {
	root     string
	limits   models.Limits
	examples map[string]string
}

// NewGambitAdapter creates the Gambit example adapter. examples maps
// directory names under examples/ to descriptions.
func NewGambitAdapter(root string, limits models.Limits, examples map[string]string) *GambitAdapter {
	return &GambitAdapter{root: root, limits: limits, examples: examples}
}

// Name implements Adapter.
func (a *GambitAdapter) Name() string { return "gambit" }

// Extract converts every .scm file in each known example directory.
// Missing directories contribute nothing.
func (a *GambitAdapter) Extract() ([]models.ExtractedPair, error) {
	dirs := make([]string, 0, len(a.examples))
	for d := range a.examples {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var pairs []models.ExtractedPair
	for _, dirname := range dirs {
		dirpath := filepath.Join(a.root, "examples", dirname)
		if info, err := os.Stat(dirpath); err != nil || !info.IsDir() {
			continue
		}

		files, err := filepath.Glob(filepath.Join(dirpath, "*.scm"))
		if err != nil {
			continue
		}
		sort.Strings(files)

		for _, f := range files {
			content, ok := readOptionalFile(f)
			if !ok || len(content) < a.limits.SourceMin {
				continue
			}

			base := filepath.Base(f)
			pairs = append(pairs, models.ExtractedPair{
				Question: fmt.Sprintf("Show me a Gambit Scheme example of %s.", a.examples[dirname]),
				Answer: fmt.Sprintf("Here's `%s/%s` from the Gambit examples:\n\n```scheme\n%s\n```",
					dirname, base, strings.TrimSpace(content)),
				Source: fmt.Sprintf("gambit:examples/%s/%s", dirname, base),
			})
		}
	}

	return pairs, nil
}
