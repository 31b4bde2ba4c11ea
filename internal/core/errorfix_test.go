package core

import (
	"strings"
	"testing"

	"github.com/gerbilkit/distill/pkg/models"
)

func TestErrorFixAdapter_FullMapping(t *testing.T) {
	src := &fakeCorpus{fixes: []models.ErrorFix{{
		ID:           "e1",
		Pattern:      "Unbound variable: displayln",
		Fix:          "Import the :gerbil/gambit prelude or :std/misc/ports.",
		Type:         "ImportError",
		WrongExample: "(displayln x)",
		CodeExample:  "(import :std/misc/ports)\n(displayln x)",
	}}}

	pairs, err := NewErrorFixAdapter(src).Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	p := pairs[0]
	if p.Source != "errorfix:e1" {
		t.Errorf("expected errorfix:e1, got %s", p.Source)
	}
	if p.Question != `I'm getting this Gerbil error: "Unbound variable: displayln". How do I fix it?` {
		t.Errorf("unexpected question: %q", p.Question)
	}
	if !strings.Contains(p.Answer, "**Type:** ImportError") {
		t.Errorf("answer missing type: %q", p.Answer)
	}

	// The wrong example must come before the correct one.
	wrongIdx := strings.Index(p.Answer, "**Wrong:**")
	correctIdx := strings.Index(p.Answer, "**Correct:**")
	if wrongIdx < 0 || correctIdx < 0 || wrongIdx > correctIdx {
		t.Errorf("expected wrong before correct: %q", p.Answer)
	}
}

func TestErrorFixAdapter_DefaultType(t *testing.T) {
	src := &fakeCorpus{fixes: []models.ErrorFix{{
		ID:      "e2",
		Pattern: "something broke",
		Fix:     "Do the other thing.",
	}}}

	pairs, err := NewErrorFixAdapter(src).Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pairs[0].Answer, "**Type:** Error") {
		t.Errorf("expected default type Error: %q", pairs[0].Answer)
	}
	if strings.Contains(pairs[0].Answer, "**Wrong:**") || strings.Contains(pairs[0].Answer, "**Correct:**") {
		t.Errorf("unexpected code blocks without examples: %q", pairs[0].Answer)
	}
}

func TestErrorFixAdapter_SkipsTestFixtures(t *testing.T) {
	src := &fakeCorpus{fixes: []models.ErrorFix{
		{ID: "test-e3", Pattern: "x", Fix: "y"},
		{ID: "e4", Pattern: "x", Fix: "y"},
	}}

	pairs, err := NewErrorFixAdapter(src).Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Source != "errorfix:e4" {
		t.Errorf("expected errorfix:e4, got %s", pairs[0].Source)
	}
}
