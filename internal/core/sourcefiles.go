package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// truncationMarker is appended when an oversized std-library file is
// cut to its leading lines.
const truncationMarker = ";; ... (truncated)"

// StdSourceAdapter converts the catalogued standard-library source
// files into example-implementation entries.
type StdSourceAdapter struct {
	root    string
	limits  models.Limits
	modules map[string]string
}

// NewStdSourceAdapter creates the std-library source adapter. modules
// maps source paths relative to the Gerbil root to descriptions.
func NewStdSourceAdapter(root string, limits models.Limits, modules map[string]string) *StdSourceAdapter {
	return &StdSourceAdapter{root: root, limits: limits, modules: modules}
}

// Name implements Adapter.
func (a *StdSourceAdapter) Name() string { return "std-source" }

// Extract reads each catalogued module, preferring the listed path and
// falling back to its api.ss variant for re-export modules. Oversized
// files are truncated to their leading lines with a marker appended.
func (a *StdSourceAdapter) Extract() ([]models.ExtractedPair, error) {
	// Map iteration order is random; sort for a stable entry order.
	modPaths := make([]string, 0, len(a.modules))
	for p := range a.modules {
		modPaths = append(modPaths, p)
	}
	sort.Strings(modPaths)

	var pairs []models.ExtractedPair
	for _, modPath := range modPaths {
		path := filepath.Join(a.root, filepath.FromSlash(modPath))
		if _, err := os.Stat(path); err != nil {
			// Some modules are just re-exports; try the api.ss variant.
			alt := strings.TrimSuffix(path, ".ss") + "/api.ss"
			if _, err := os.Stat(alt); err != nil {
				continue
			}
			path = alt
		}

		content, ok := readOptionalFile(path)
		if !ok || len(content) < a.limits.SourceMin {
			continue
		}

		if len(content) > a.limits.StdMax {
			lines := strings.Split(content, "\n")
			if len(lines) > a.limits.StdLines {
				lines = lines[:a.limits.StdLines]
			}
			content = strings.Join(lines, "\n") + "\n" + truncationMarker
		}

		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("Show me the implementation of %s in Gerbil's standard library.", a.modules[modPath]),
			Answer: fmt.Sprintf("Here's the source from `%s`:\n\n```scheme\n%s\n```",
				modPath, strings.TrimSpace(content)),
			Source: fmt.Sprintf("std-source:%s:full", modPath),
		})
	}

	return pairs, nil
}
