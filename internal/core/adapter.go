// Package core contains the business logic for distill: the
// normalizer, the source adapters, the entry builders, deduplication,
// and the pipeline that ties them together.
package core

import (
	"fmt"

	"github.com/gerbilkit/distill/pkg/models"
)

// Adapter turns one knowledge source into a stream of extracted pairs.
// Implementations recover locally from missing or unreadable optional
// inputs by returning an empty slice; only the required structured
// collections surface errors, which abort the pipeline.
type Adapter interface {
	// Name is the short source label used in progress output and the
	// event log (e.g. "cookbooks", "reference").
	Name() string
	// Extract produces zero or more question/answer pairs.
	Extract() ([]models.ExtractedPair, error)
}

// Registry holds adapters in their fixed invocation order.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an adapter. Registration order is invocation order.
func (r *Registry) Register(a Adapter) error {
	if a == nil {
		return fmt.Errorf("registering adapter: nil adapter")
	}
	for _, existing := range r.adapters {
		if existing.Name() == a.Name() {
			return fmt.Errorf("registering adapter: duplicate name %q", a.Name())
		}
	}
	r.adapters = append(r.adapters, a)
	return nil
}

// Adapters returns the registered adapters in order.
func (r *Registry) Adapters() []Adapter {
	return r.adapters
}
