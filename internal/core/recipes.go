package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// CorpusSource provides the three required structured collections.
// Load failures are fatal to the pipeline.
type CorpusSource interface {
	Recipes() ([]models.Recipe, error)
	SecurityRules() ([]models.SecurityRule, error)
	ErrorFixes() ([]models.ErrorFix, error)
}

// wrongSnippet matches a ";; WRONG" annotated snippet inside recipe
// code, terminated by the next comment line, a blank line, or end of
// text. Only the first match in a recipe is used.
var wrongSnippet = regexp.MustCompile(`(?s);;\s*WRONG[:\s]*.*?(?:\n;;|\n\n|$)`)

// RecipeAdapter converts cookbook recipes into training pairs.
type RecipeAdapter struct {
	src CorpusSource
}

// NewRecipeAdapter creates the cookbook adapter.
func NewRecipeAdapter(src CorpusSource) *RecipeAdapter {
	return &RecipeAdapter{src: src}
}

// Name implements Adapter.
func (a *RecipeAdapter) Name() string { return "cookbooks" }

// Extract emits up to four variants per recipe: a how-to, an example,
// an imports question when the recipe declares imports, and a gotcha
// pair when the recipe is marked as one and carries a WRONG snippet.
// Deprecated recipes are skipped entirely.
func (a *RecipeAdapter) Extract() ([]models.ExtractedPair, error) {
	recipes, err := a.src.Recipes()
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}

	var pairs []models.ExtractedPair
	for _, r := range recipes {
		if r.Deprecated {
			continue
		}

		topic := strings.TrimRight(strings.ToLower(r.Title), ".")
		code := NormalizeCode(r.Code)

		// Variant 1: "How do I ..." question.
		var answerParts []string
		if len(r.Imports) > 0 {
			answerParts = append(answerParts, "You'll need to import: "+strings.Join(r.Imports, ", "))
		}
		answerParts = append(answerParts, "Here's how:\n\n```scheme\n"+code+"\n```")
		if r.Notes != "" {
			answerParts = append(answerParts, "\n**Notes:** "+r.Notes)
		}
		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("How do I %s in Gerbil Scheme?", topic),
			Answer:   strings.Join(answerParts, "\n\n"),
			Source:   fmt.Sprintf("cookbook:%s:howto", r.ID),
		})

		// Variant 2: "Show me an example of ..."
		exampleAnswer := "```scheme\n" + code + "\n```"
		if r.Notes != "" {
			exampleAnswer += "\n\n" + r.Notes
		}
		pairs = append(pairs, models.ExtractedPair{
			Question: fmt.Sprintf("Show me an example of %s in Gerbil Scheme.", topic),
			Answer:   exampleAnswer,
			Source:   fmt.Sprintf("cookbook:%s:example", r.ID),
		})

		// Variant 3: "What imports do I need for ..."
		if len(r.Imports) > 0 {
			importLines := make([]string, len(r.Imports))
			for i, imp := range r.Imports {
				importLines[i] = "(import " + imp + ")"
			}
			importAnswer := "You need:\n\n```scheme\n" + strings.Join(importLines, "\n") + "\n```"
			if r.Notes != "" && strings.Contains(strings.ToLower(r.Notes), "import") {
				importAnswer += "\n\n" + r.Notes
			}
			pairs = append(pairs, models.ExtractedPair{
				Question: fmt.Sprintf("What imports do I need to %s in Gerbil?", topic),
				Answer:   importAnswer,
				Source:   fmt.Sprintf("cookbook:%s:imports", r.ID),
			})
		}

		// Variant 4: gotcha recipes get a "What's wrong with ..." pair,
		// but only when a WRONG-annotated snippet is actually present.
		if isGotcha(r) {
			if wrong := strings.TrimSpace(wrongSnippet.FindString(code)); wrong != "" {
				tags := r.Tags
				if len(tags) > 3 {
					tags = tags[:3]
				}
				pairs = append(pairs, models.ExtractedPair{
					Question: fmt.Sprintf("What's a common mistake when %s in Gerbil Scheme?", strings.Join(tags, " ")),
					Answer:   "**Common mistake:**\n\n```scheme\n" + wrong + "\n```\n\n**The fix:** " + r.Notes,
					Source:   fmt.Sprintf("cookbook:%s:gotcha", r.ID),
				})
			}
		}
	}

	return pairs, nil
}

// isGotcha reports whether a recipe documents a common mistake.
func isGotcha(r models.Recipe) bool {
	for _, tag := range r.Tags {
		if tag == "gotcha" {
			return true
		}
	}
	return strings.Contains(strings.ToUpper(r.Title), "GOTCHA")
}
