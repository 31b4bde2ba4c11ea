package core

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStdSourceAdapter_Basic(t *testing.T) {
	root := t.TempDir()
	code := "(export flatten)\n(def (flatten lst)\n  ;; walk nested pairs\n  (foldr append [] lst))\n"
	writeFile(t, filepath.Join(root, "src", "std", "misc", "list.ss"), code)

	adapter := NewStdSourceAdapter(root, testLimits(), map[string]string{
		"src/std/misc/list.ss": "list manipulation utilities",
	})

	pairs, err := adapter.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	p := pairs[0]
	if p.Source != "std-source:src/std/misc/list.ss:full" {
		t.Errorf("unexpected source: %s", p.Source)
	}
	if p.Question != "Show me the implementation of list manipulation utilities in Gerbil's standard library." {
		t.Errorf("unexpected question: %q", p.Question)
	}
}

func TestStdSourceAdapter_APIFallback(t *testing.T) {
	root := t.TempDir()
	code := "(export #t)\n(def (request url)\n  ;; tiny client over std/net\n  (http-get url))\n"
	writeFile(t, filepath.Join(root, "src", "std", "net", "request", "api.ss"), code)

	adapter := NewStdSourceAdapter(root, testLimits(), map[string]string{
		"src/std/net/request.ss": "the HTTP client",
	})

	pairs, err := adapter.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected api.ss fallback to be used, got %d pairs", len(pairs))
	}
	// The identifier keeps the catalogued path, not the fallback path.
	if pairs[0].Source != "std-source:src/std/net/request.ss:full" {
		t.Errorf("unexpected source: %s", pairs[0].Source)
	}
}

func TestStdSourceAdapter_TruncatesOversizedFiles(t *testing.T) {
	root := t.TempDir()
	limits := testLimits()
	limits.StdMax = 100
	limits.StdLines = 3

	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("(def (fn) (void)) ;; filler line\n")
	}
	writeFile(t, filepath.Join(root, "src", "std", "big.ss"), b.String())

	adapter := NewStdSourceAdapter(root, limits, map[string]string{
		"src/std/big.ss": "a large module",
	})

	pairs, err := adapter.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if !strings.Contains(pairs[0].Answer, truncationMarker) {
		t.Errorf("expected truncation marker in answer: %q", pairs[0].Answer)
	}
	if lines := strings.Count(pairs[0].Answer, "filler line"); lines > 3 {
		t.Errorf("expected at most 3 source lines, got %d", lines)
	}
}

func TestStdSourceAdapter_MissingModule(t *testing.T) {
	adapter := NewStdSourceAdapter(t.TempDir(), testLimits(), map[string]string{
		"src/std/absent.ss": "nothing here",
	})
	pairs, err := adapter.Extract()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no pairs, got %d", len(pairs))
	}
}
