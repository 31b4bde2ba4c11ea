package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gerbilkit/distill/pkg/models"
)

func testLimits() models.Limits {
	return models.Limits{
		DocMax:      8000,
		SectionMin:  20,
		APIMin:      50,
		TutorialMax: 12000,
		SourceMin:   50,
		TestMin:     100,
		TestMax:     15000,
		StdMax:      20000,
		StdLines:    500,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConvertMarkdownDoc_WholeDocAndSections(t *testing.T) {
	dir := t.TempDir()
	doc := "# Error Handling\n\nshort intro\n\n## Raising Conditions\n" +
		"Use raise with a condition object to signal errors.\n\n## Tiny\nx"
	writeFile(t, filepath.Join(dir, "errors.md"), doc)

	pairs := convertMarkdownDoc(filepath.Join(dir, "errors.md"), dir, testLimits())

	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d: %+v", len(pairs), pairs)
	}
	if pairs[0].Source != "doc:errors.md:full" {
		t.Errorf("expected whole-doc entry first, got %s", pairs[0].Source)
	}
	if pairs[0].Question != "Explain Error Handling in Gerbil Scheme." {
		t.Errorf("unexpected whole-doc question: %q", pairs[0].Question)
	}
	if pairs[1].Source != "doc:errors.md:Raising Conditions" {
		t.Errorf("unexpected section source: %s", pairs[1].Source)
	}
}

func TestConvertMarkdownDoc_LargeDocSkipsWholeEntry(t *testing.T) {
	dir := t.TempDir()
	limits := testLimits()
	limits.DocMax = 50
	doc := "# Big Doc\n\n## Section One\n" + strings.Repeat("content ", 20)
	writeFile(t, filepath.Join(dir, "big.md"), doc)

	pairs := convertMarkdownDoc(filepath.Join(dir, "big.md"), dir, limits)
	for _, p := range pairs {
		if strings.HasSuffix(p.Source, ":full") {
			t.Errorf("oversized doc produced a whole-doc entry: %s", p.Source)
		}
	}
	if len(pairs) == 0 {
		t.Error("expected section entries from oversized doc")
	}
}

func TestConvertMarkdownDoc_SkipsStructuralHeadings(t *testing.T) {
	dir := t.TempDir()
	doc := "# Guide\n\n## Table of Contents\n" +
		"A long list of links that should never become a training entry.\n\n" +
		"## Real Content\nThis section explains something substantive."
	writeFile(t, filepath.Join(dir, "guide.md"), doc)

	pairs := convertMarkdownDoc(filepath.Join(dir, "guide.md"), dir, testLimits())
	for _, p := range pairs {
		if strings.Contains(p.Source, "Table of Contents") {
			t.Errorf("structural heading became an entry: %s", p.Source)
		}
	}
}

func TestConvertMarkdownDoc_LongHeadingTruncatedInID(t *testing.T) {
	dir := t.TempDir()
	heading := "A very long section heading that exceeds the identifier limit"
	doc := "# Doc\n\n## " + heading + "\nThe body of the long-headed section, long enough to keep."
	writeFile(t, filepath.Join(dir, "long.md"), doc)

	pairs := convertMarkdownDoc(filepath.Join(dir, "long.md"), dir, testLimits())

	var found bool
	for _, p := range pairs {
		if strings.HasPrefix(p.Source, "doc:long.md:A very long") {
			found = true
			suffix := strings.TrimPrefix(p.Source, "doc:long.md:")
			if len(suffix) > headingIDMax {
				t.Errorf("heading in identifier exceeds %d bytes: %q", headingIDMax, suffix)
			}
		}
	}
	if !found {
		t.Fatalf("section entry not found in %+v", pairs)
	}
}

func TestConvertMarkdownDoc_MissingFile(t *testing.T) {
	if pairs := convertMarkdownDoc(filepath.Join(t.TempDir(), "nope.md"), "", testLimits()); pairs != nil {
		t.Errorf("expected nil for missing file, got %+v", pairs)
	}
}

func TestMarkdownDirAdapter_SortedAndRelative(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "doc", "guide")
	writeFile(t, filepath.Join(dir, "b.md"), "# Second Topic\n\nShort.")
	writeFile(t, filepath.Join(dir, "a.md"), "# First Topic\n\nShort.")

	adapter := NewMarkdownDirAdapter("guides", dir, root, testLimits())
	if adapter.Name() != "guides" {
		t.Errorf("unexpected name: %s", adapter.Name())
	}

	pairs, err := adapter.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	// Identifiers use the path relative to the configured root, in
	// sorted file order.
	if pairs[0].Source != "doc:doc/guide/a.md:full" {
		t.Errorf("unexpected first source: %s", pairs[0].Source)
	}
	if pairs[1].Source != "doc:doc/guide/b.md:full" {
		t.Errorf("unexpected second source: %s", pairs[1].Source)
	}
}

func TestMarkdownDirAdapter_MissingDir(t *testing.T) {
	adapter := NewMarkdownDirAdapter("resources", filepath.Join(t.TempDir(), "absent"), "", testLimits())
	pairs, err := adapter.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no pairs, got %d", len(pairs))
	}
}
