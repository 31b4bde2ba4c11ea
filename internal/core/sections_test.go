package core

import (
	"testing"
)

func TestSplitSections_Basic(t *testing.T) {
	doc := "# Title\n\nintro text\n\n## First\nbody one\n\n## Second\nbody two"
	sections := SplitSections(doc)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Heading != "Title" || sections[0].Body != "intro text" {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if sections[1].Heading != "First" || sections[1].Body != "body one" {
		t.Errorf("unexpected second section: %+v", sections[1])
	}
	if sections[2].Heading != "Second" || sections[2].Body != "body two" {
		t.Errorf("unexpected third section: %+v", sections[2])
	}
}

func TestSplitSections_PreambleBeforeFirstHeading(t *testing.T) {
	sections := SplitSections("leading text\n# Title\nbody")
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Heading != "" || sections[0].Body != "leading text" {
		t.Errorf("unexpected preamble section: %+v", sections[0])
	}
}

func TestSplitSections_Empty(t *testing.T) {
	if sections := SplitSections(""); len(sections) != 0 {
		t.Errorf("expected no sections, got %d", len(sections))
	}
}

func TestDocTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"heading first", "# Getting Started\n\ntext", "Getting Started"},
		{"leading blank lines", "\n\n## Deep Title\ntext", "Deep Title"},
		{"no heading", "plain text\n# Later", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocTitle(tt.content); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsStructuralHeading(t *testing.T) {
	for _, h := range []string{"Table of Contents", "CONTENTS", "readme"} {
		if !isStructuralHeading(h) {
			t.Errorf("expected %q to be structural", h)
		}
	}
	if isStructuralHeading("Error Handling") {
		t.Error("expected content heading to be non-structural")
	}
}

func TestTruncateHeading(t *testing.T) {
	if got := truncateHeading("short", 40); got != "short" {
		t.Errorf("expected unmodified heading, got %q", got)
	}

	long := "this heading is definitely longer than forty characters total"
	got := truncateHeading(long, 40)
	if len(got) > 40 {
		t.Errorf("expected at most 40 bytes, got %d", len(got))
	}
	if got != long[:40] {
		t.Errorf("expected prefix %q, got %q", long[:40], got)
	}
}

func TestTruncateHeading_RuneBoundary(t *testing.T) {
	// The multibyte rune straddles the cut point and must be dropped
	// whole rather than split.
	heading := "aaaé"
	got := truncateHeading(heading, 4)
	if got != "aaa" {
		t.Errorf("expected %q, got %q", "aaa", got)
	}
}
