package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerbilkit/distill/pkg/models"
)

func defaultsForTest() models.Catalog {
	return models.Catalog{
		StdModules:     map[string]string{"src/std/misc/list.ss": "list utilities"},
		TutorialDirs:   map[string]string{"httpd": "a web server"},
		GambitExamples: map[string]string{"pi": "computing digits of pi"},
	}
}

func TestLoadCatalog_MissingFileReturnsDefaults(t *testing.T) {
	catalog, err := LoadCatalog(t.TempDir(), defaultsForTest())
	require.NoError(t, err)
	assert.Equal(t, defaultsForTest(), catalog)
}

func TestLoadCatalog_OverlaysEntries(t *testing.T) {
	dir := t.TempDir()
	override := `std_modules:
  src/std/misc/list.ss: better list utilities
  src/std/net/httpd.ss: the HTTP server
tutorial_dirs:
  kvstore: a key-value store
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CatalogFile), []byte(override), 0o644))

	catalog, err := LoadCatalog(dir, defaultsForTest())
	require.NoError(t, err)

	// Overridden, added, and untouched entries all coexist.
	assert.Equal(t, "better list utilities", catalog.StdModules["src/std/misc/list.ss"])
	assert.Equal(t, "the HTTP server", catalog.StdModules["src/std/net/httpd.ss"])
	assert.Equal(t, "a web server", catalog.TutorialDirs["httpd"])
	assert.Equal(t, "a key-value store", catalog.TutorialDirs["kvstore"])
	assert.Equal(t, defaultsForTest().GambitExamples, catalog.GambitExamples)
}

func TestLoadCatalog_MalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CatalogFile), []byte("std_modules: ["), 0o644))

	_, err := LoadCatalog(dir, defaultsForTest())
	require.Error(t, err)
}
