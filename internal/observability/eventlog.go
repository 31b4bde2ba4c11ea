// Package observability provides the run-scoped JSONL event log used
// to trace pipeline executions.
package observability

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents a single observable event in a pipeline run.
type Event struct {
	Time    time.Time      `json:"time"`
	RunID   string         `json:"run_id"`
	Type    string         `json:"type"` // e.g. "adapter.extracted", "pipeline.deduplicated"
	Message string         `json:"msg"`
	Data    map[string]any `json:"data,omitempty"`
}

// EventLog defines the interface for writing run events.
type EventLog interface {
	// RunID identifies the pipeline run all events belong to.
	RunID() string
	Write(eventType string, data map[string]any) error
	Close() error
}

// jsonlEventLog implements EventLog using an append-only JSONL file.
// Every log carries the run ID assigned at creation.
type jsonlEventLog struct {
	runID string
	file  *os.File
	mu    sync.Mutex
}

// NewJSONLEventLog creates an EventLog appending to the given path,
// stamped with a fresh run ID.
func NewJSONLEventLog(path string) (EventLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	return &jsonlEventLog{
		runID: uuid.NewString(),
		file:  f,
	}, nil
}

func (l *jsonlEventLog) RunID() string { return l.runID }

// Write appends a JSON-encoded event followed by a newline.
func (l *jsonlEventLog) Write(eventType string, data map[string]any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	event := Event{
		Time:    time.Now().UTC(),
		RunID:   l.runID,
		Type:    eventType,
		Message: eventType,
		Data:    data,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}
	payload = append(payload, '\n')

	if _, err := l.file.Write(payload); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// Close closes the underlying log file.
func (l *jsonlEventLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing event log: %w", err)
	}
	return nil
}
