package core

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gerbilkit/distill/pkg/models"
)

// EventLogger records pipeline events without coupling core to the
// observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// AdapterCount is the number of pairs one adapter contributed.
type AdapterCount struct {
	Name  string
	Pairs int
}

// CategoryCount is the number of deduplicated entries whose identifier
// starts with a given category prefix.
type CategoryCount struct {
	Category string
	Count    int
}

// Result holds the deduplicated output streams and the run statistics.
type Result struct {
	Conversations []models.ConversationEntry
	Flats         []models.FlatEntry

	// PerAdapter lists pre-dedup pair counts in invocation order.
	PerAdapter []AdapterCount
	// TotalBeforeDedup is the entry count per stream before dedup.
	TotalBeforeDedup int
}

// CategoryCounts groups the deduplicated conversation stream by the
// identifier prefix before the first separator, descending by count.
// Ties order by category name so the report is stable.
func (r *Result) CategoryCounts() []CategoryCount {
	counts := make(map[string]int)
	for _, e := range r.Conversations {
		category, _, _ := strings.Cut(e.Source, ":")
		if category == "" {
			category = "unknown"
		}
		counts[category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Pipeline runs every registered adapter in order, builds the two
// parallel entry streams in lockstep, and deduplicates each. It is a
// one-shot batch job: no state survives a run.
type Pipeline struct {
	registry *Registry
	persona  string
	events   EventLogger
	progress func(adapter string, pairs int)
}

// NewPipeline creates a pipeline over the given adapter registry.
// events may be nil to disable event logging; progress may be nil to
// disable per-adapter progress reporting.
func NewPipeline(registry *Registry, persona string, events EventLogger, progress func(adapter string, pairs int)) *Pipeline {
	return &Pipeline{
		registry: registry,
		persona:  persona,
		events:   events,
		progress: progress,
	}
}

// Run executes all adapters sequentially. The first adapter error
// aborts the run before any output exists; adapters themselves treat
// missing optional inputs as empty contributions, so errors here mean
// a required corpus collection is missing or malformed.
func (p *Pipeline) Run() (*Result, error) {
	var convs []models.ConversationEntry
	var flats []models.FlatEntry
	result := &Result{}

	for _, adapter := range p.registry.Adapters() {
		pairs, err := adapter.Extract()
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", adapter.Name(), err)
		}

		// Both streams are built from the same pair in one place so
		// they cannot drift out of correspondence.
		for _, pair := range pairs {
			convs = append(convs, NewConversationEntry(p.persona, pair))
			flats = append(flats, NewFlatEntry(pair))
		}

		result.PerAdapter = append(result.PerAdapter, AdapterCount{Name: adapter.Name(), Pairs: len(pairs)})
		if p.progress != nil {
			p.progress(adapter.Name(), len(pairs))
		}
		if p.events != nil {
			_ = p.events.LogEvent("adapter.extracted", map[string]any{
				"adapter": adapter.Name(),
				"pairs":   len(pairs),
			})
		}
	}

	result.TotalBeforeDedup = len(convs)
	result.Conversations = DedupConversations(convs)
	result.Flats = DedupFlats(flats)

	if p.events != nil {
		_ = p.events.LogEvent("pipeline.deduplicated", map[string]any{
			"before": result.TotalBeforeDedup,
			"after":  len(result.Conversations),
		})
	}

	return result, nil
}

// DefaultRegistry assembles the full adapter set in the fixed
// invocation order: cookbooks, security, errorfixes, resources,
// guides, reference, tutorials, gambit, tests, std-source.
func DefaultRegistry(src CorpusSource, cfg *models.PipelineConfig, catalog models.Catalog) (*Registry, error) {
	reg := NewRegistry()

	adapters := []Adapter{
		NewRecipeAdapter(src),
		NewSecurityAdapter(src),
		NewErrorFixAdapter(src),
		NewMarkdownDirAdapter("resources",
			filepath.Join(cfg.Roots.Corpus, "src", "resources"), cfg.Roots.Corpus, cfg.Limits),
		NewMarkdownDirAdapter("guides",
			filepath.Join(cfg.Roots.Gerbil, "doc", "guide"), cfg.Roots.Gerbil, cfg.Limits),
		NewReferenceAdapter(
			filepath.Join(cfg.Roots.Gerbil, "doc", "reference"), cfg.Roots.Gerbil, cfg.Limits),
		NewTutorialAdapter(
			filepath.Join(cfg.Roots.Gerbil, "src", "tutorial"),
			filepath.Join(cfg.Roots.Gerbil, "doc", "tutorials"),
			cfg.Roots.Gerbil, cfg.Limits, catalog.TutorialDirs),
		NewGambitAdapter(cfg.Roots.Gambit, cfg.Limits, catalog.GambitExamples),
		NewTestFileAdapter(cfg.Roots.Gerbil, cfg.Limits),
		NewStdSourceAdapter(cfg.Roots.Gerbil, cfg.Limits, catalog.StdModules),
	}

	for _, a := range adapters {
		if err := reg.Register(a); err != nil {
			return nil, fmt.Errorf("building default registry: %w", err)
		}
	}
	return reg, nil
}
