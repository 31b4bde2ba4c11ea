// Package internal provides the App struct that wires all components of
// the distill pipeline together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerbilkit/distill/internal/cli"
	"github.com/gerbilkit/distill/internal/core"
	"github.com/gerbilkit/distill/internal/observability"
	"github.com/gerbilkit/distill/internal/storage"
	"github.com/gerbilkit/distill/pkg/models"
)

// App holds all service dependencies for the distill pipeline.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Cfg       *models.PipelineConfig
	Catalog   models.Catalog

	// Storage layer
	Corpus storage.CorpusStore
	Writer storage.DatasetWriter
	Reader storage.DatasetReader

	// Observability
	EventLog observability.EventLog
}

// NewApp creates and wires all components of the distill pipeline.
// basePath is the directory holding .distillconfig and the optional
// description catalog.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	app.Cfg = cfg

	app.Catalog, err = storage.LoadCatalog(basePath, core.DefaultCatalog())
	if err != nil {
		return nil, fmt.Errorf("loading description catalog: %w", err)
	}

	// --- Storage layer ---
	app.Corpus = storage.NewCorpusStore(cfg.Roots.Corpus)
	app.Writer = storage.NewDatasetWriter(cfg.Roots.Output)
	app.Reader = storage.NewDatasetReader(cfg.Roots.Output)

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".distill_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if log can't be created.
		app.EventLog = nil
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Cfg = app.Cfg
	cli.ConfigMgr = app.ConfigMgr
	cli.Catalog = app.Catalog
	cli.Corpus = app.Corpus
	cli.Writer = app.Writer
	cli.Reader = app.Reader
	cli.EventLog = app.EventLog
	if app.EventLog != nil {
		cli.Events = &eventLogAdapter{log: app.EventLog}
	}

	return app, nil
}

// Close releases resources held by the App, such as the event log file
// handle. It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the directory holding .distillconfig.
// It checks the DISTILL_HOME env var, then walks up from the current
// directory looking for a .distillconfig file.
func ResolveBasePath() string {
	if home := os.Getenv("DISTILL_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".distillconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	// Fall back to cwd.
	cwd, _ := os.Getwd()
	return cwd
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(eventType, data)
}
