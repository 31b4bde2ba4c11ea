package cli

import (
	"github.com/gerbilkit/distill/internal/core"
	"github.com/gerbilkit/distill/internal/observability"
	"github.com/gerbilkit/distill/internal/storage"
	"github.com/gerbilkit/distill/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath string

	Cfg       *models.PipelineConfig
	ConfigMgr core.ConfigurationManager
	Catalog   models.Catalog

	Corpus storage.CorpusStore
	Writer storage.DatasetWriter
	Reader storage.DatasetReader

	EventLog observability.EventLog
	Events   core.EventLogger
)
