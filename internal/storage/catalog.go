package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerbilkit/distill/pkg/models"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the optional description catalog override next to
// the config file.
const CatalogFile = "descriptions.yaml"

// LoadCatalog returns the description catalog: the built-in defaults,
// overlaid with any entries from descriptions.yaml in basePath. A
// missing file returns the defaults unchanged; a malformed file is an
// error, since the operator wrote it deliberately.
func LoadCatalog(basePath string, defaults models.Catalog) (models.Catalog, error) {
	data, err := os.ReadFile(filepath.Join(basePath, CatalogFile))
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return models.Catalog{}, fmt.Errorf("reading %s: %w", CatalogFile, err)
	}

	var override models.Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return models.Catalog{}, fmt.Errorf("parsing %s: %w", CatalogFile, err)
	}

	merged := models.Catalog{
		StdModules:     mergeMaps(defaults.StdModules, override.StdModules),
		TutorialDirs:   mergeMaps(defaults.TutorialDirs, override.TutorialDirs),
		GambitExamples: mergeMaps(defaults.GambitExamples, override.GambitExamples),
	}
	return merged, nil
}

// mergeMaps overlays override entries onto a copy of base.
func mergeMaps(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
