package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCorpusStore_Recipes(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, CookbooksFile, `[
		{"id": "r1", "title": "Read a file", "tags": ["io"],
		 "imports": [":std/misc/ports"], "code": "(read-file-string path)",
		 "notes": "Returns a string.", "gerbil_version": "0.18"}
	]`)

	recipes, err := NewCorpusStore(dir).Recipes()
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "Read a file", r.Title)
	assert.Equal(t, []string{":std/misc/ports"}, r.Imports)
	assert.Equal(t, "0.18", r.GerbilVersion)
	assert.False(t, r.Deprecated)
}

func TestCorpusStore_SecurityRulesAndErrorFixes(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, SecurityRulesFile, `[
		{"id": "s1", "title": "Unchecked input", "severity": "high",
		 "scope": "net", "message": "m", "remediation": "r", "tags": ["net"]}
	]`)
	writeCorpusFile(t, dir, ErrorFixesFile, `[
		{"id": "e1", "pattern": "Unbound variable", "fix": "Import it.",
		 "wrong_example": "(x)", "code_example": "(import :std/x)\n(x)", "type": "ImportError"}
	]`)

	store := NewCorpusStore(dir)

	rules, err := store.SecurityRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "high", rules[0].Severity)

	fixes, err := store.ErrorFixes()
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	assert.Equal(t, "ImportError", fixes[0].Type)
	assert.Equal(t, "(x)", fixes[0].WrongExample)
}

func TestCorpusStore_MissingCollectionIsFatal(t *testing.T) {
	_, err := NewCorpusStore(t.TempDir()).Recipes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), CookbooksFile)
}

func TestCorpusStore_MalformedCollectionIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, SecurityRulesFile, `{"not": "an array"}`)

	_, err := NewCorpusStore(dir).SecurityRules()
	require.Error(t, err)
	assert.Contains(t, err.Error(), SecurityRulesFile)
}
