package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerbilkit/distill/pkg/models"
)

// Output file names under the output root.
const (
	ConversationsFile = "training_data.jsonl"
	FlatFile          = "training_data_alpaca.jsonl"
	FlatArrayFile     = "training_data_alpaca.json"
)

// WrittenFile describes one emitted output file.
type WrittenFile struct {
	Path string
	Size int64
}

// DatasetWriter serializes the deduplicated entry streams to the
// training data files.
type DatasetWriter interface {
	// WriteConversations writes the conversation stream as JSONL.
	WriteConversations(entries []models.ConversationEntry) (WrittenFile, error)
	// WriteFlats writes the flat stream as JSONL.
	WriteFlats(entries []models.FlatEntry) (WrittenFile, error)
	// WriteFlatArray writes the flat stream as one indented JSON array.
	WriteFlatArray(entries []models.FlatEntry) (WrittenFile, error)
}

type fileDatasetWriter struct {
	outputDir string
}

// NewDatasetWriter creates a DatasetWriter targeting outputDir. The
// directory is created on first write.
func NewDatasetWriter(outputDir string) DatasetWriter {
	return &fileDatasetWriter{outputDir: outputDir}
}

func (w *fileDatasetWriter) WriteConversations(entries []models.ConversationEntry) (WrittenFile, error) {
	return writeJSONL(w.outputDir, ConversationsFile, entries)
}

func (w *fileDatasetWriter) WriteFlats(entries []models.FlatEntry) (WrittenFile, error) {
	return writeJSONL(w.outputDir, FlatFile, entries)
}

func (w *fileDatasetWriter) WriteFlatArray(entries []models.FlatEntry) (WrittenFile, error) {
	path := filepath.Join(w.outputDir, FlatArrayFile)
	f, err := createOutput(w.outputDir, path)
	if err != nil {
		return WrittenFile{}, err
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return WrittenFile{}, fmt.Errorf("writing %s: %w", FlatArrayFile, err)
	}

	return statWritten(f, path)
}

// writeJSONL writes one JSON record per line.
func writeJSONL[T any](dir, name string, entries []T) (WrittenFile, error) {
	path := filepath.Join(dir, name)
	f, err := createOutput(dir, path)
	if err != nil {
		return WrittenFile{}, err
	}
	defer func() { _ = f.Close() }()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return WrittenFile{}, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return WrittenFile{}, fmt.Errorf("flushing %s: %w", name, err)
	}

	return statWritten(f, path)
}

func createOutput(dir, path string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return f, nil
}

func statWritten(f *os.File, path string) (WrittenFile, error) {
	info, err := f.Stat()
	if err != nil {
		return WrittenFile{}, fmt.Errorf("sizing %s: %w", filepath.Base(path), err)
	}
	return WrittenFile{Path: path, Size: info.Size()}, nil
}
