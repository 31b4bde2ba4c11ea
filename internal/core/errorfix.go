package core

import (
	"fmt"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// testFixturePrefix marks error-fix records used only by the corpus
// test suite; they never appear in training data.
const testFixturePrefix = "test-"

// ErrorFixAdapter converts error-to-fix mappings into training pairs.
type ErrorFixAdapter struct {
	src CorpusSource
}

// NewErrorFixAdapter creates the error-fix adapter.
func NewErrorFixAdapter(src CorpusSource) *ErrorFixAdapter {
	return &ErrorFixAdapter{src: src}
}

// Name implements Adapter.
func (a *ErrorFixAdapter) Name() string { return "errorfixes" }

// Extract emits one pair per mapping: a question embedding the literal
// error pattern, answered with the fix type, the explanation, and the
// wrong/correct code examples when present (wrong before correct).
func (a *ErrorFixAdapter) Extract() ([]models.ExtractedPair, error) {
	fixes, err := a.src.ErrorFixes()
	if err != nil {
		return nil, fmt.Errorf("loading error fixes: %w", err)
	}

	var pairs []models.ExtractedPair
	for _, fix := range fixes {
		if strings.HasPrefix(fix.ID, testFixturePrefix) {
			continue
		}

		fixType := fix.Type
		if fixType == "" {
			fixType = "Error"
		}

		parts := []string{fmt.Sprintf("**Type:** %s\n\n**Explanation:** %s", fixType, fix.Fix)}
		if fix.WrongExample != "" {
			parts = append(parts, "**Wrong:**\n```scheme\n"+NormalizeCode(fix.WrongExample)+"\n```")
		}
		if fix.CodeExample != "" {
			parts = append(parts, "**Correct:**\n```scheme\n"+NormalizeCode(fix.CodeExample)+"\n```")
		}

		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("I'm getting this Gerbil error: \"%s\". How do I fix it?", fix.Pattern),
			Answer:   strings.Join(parts, "\n\n"),
			Source:   fmt.Sprintf("errorfix:%s", fix.ID),
		})
	}

	return pairs, nil
}
