package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerbilkit/distill/pkg/models"
)

// maxEntryLine bounds a single serialized entry; whole tutorial
// documents can push a line well past the scanner default.
const maxEntryLine = 4 * 1024 * 1024

// DatasetReader reads back previously compiled training data for the
// stats, preview, and mcp commands.
type DatasetReader interface {
	// ReadFlats reads the flat JSONL file from the output directory.
	ReadFlats() ([]models.FlatEntry, error)
}

type fileDatasetReader struct {
	outputDir string
}

// NewDatasetReader creates a DatasetReader over outputDir.
func NewDatasetReader(outputDir string) DatasetReader {
	return &fileDatasetReader{outputDir: outputDir}
}

func (r *fileDatasetReader) ReadFlats() ([]models.FlatEntry, error) {
	path := filepath.Join(r.outputDir, FlatFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", FlatFile, err)
	}
	defer func() { _ = f.Close() }()

	var entries []models.FlatEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxEntryLine)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var entry models.FlatEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("parsing %s line %d: %w", FlatFile, line, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", FlatFile, err)
	}

	return entries, nil
}
