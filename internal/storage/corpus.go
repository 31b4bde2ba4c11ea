// Package storage handles the durable inputs and outputs of the
// distill pipeline: the required JSON corpus collections, the optional
// description catalog, and the training data files.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerbilkit/distill/pkg/models"
)

// Required corpus collection file names under the corpus root.
const (
	CookbooksFile     = "cookbooks.json"
	SecurityRulesFile = "security-rules.json"
	ErrorFixesFile    = "error-fixes.json"
)

// CorpusStore loads the three required structured collections. A
// missing or malformed collection is an error: the pipeline cannot
// proceed meaningfully without them.
type CorpusStore interface {
	Recipes() ([]models.Recipe, error)
	SecurityRules() ([]models.SecurityRule, error)
	ErrorFixes() ([]models.ErrorFix, error)
}

type fileCorpusStore struct {
	root string
}

// NewCorpusStore creates a CorpusStore reading the JSON collections
// from the given corpus root directory.
func NewCorpusStore(root string) CorpusStore {
	return &fileCorpusStore{root: root}
}

func (s *fileCorpusStore) Recipes() ([]models.Recipe, error) {
	return loadCollection[models.Recipe](filepath.Join(s.root, CookbooksFile))
}

func (s *fileCorpusStore) SecurityRules() ([]models.SecurityRule, error) {
	return loadCollection[models.SecurityRule](filepath.Join(s.root, SecurityRulesFile))
}

func (s *fileCorpusStore) ErrorFixes() ([]models.ErrorFix, error) {
	return loadCollection[models.ErrorFix](filepath.Join(s.root, ErrorFixesFile))
}

// loadCollection reads a JSON array of records from path.
func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus collection %s: %w", filepath.Base(path), err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing corpus collection %s: %w", filepath.Base(path), err)
	}
	return records, nil
}
