package filters

import (
	"maps"
	"slices"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// JSMin is the name of the JavaScript minifier.
	JSMin = "jsmin"
	// CSSMin is the name of the stylesheet minifier.
	CSSMin = "cssmin"
	// Copy is the name of the identity filter.
	Copy = "copy"
)

// Registry holds the available filters by name.
type Registry struct {
	filters map[string]ports.Filter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]ports.Filter)}
}

// NewDefaultRegistry creates a Registry with the built-in filters.
func NewDefaultRegistry(logger ports.Logger) *Registry {
	r := NewRegistry()
	r.Register(JSMin, NewJSMinifier(logger))
	r.Register(CSSMin, NewCSSMinifier(logger))
	r.Register(Copy, CopyFilter{})
	return r
}

// Register adds or replaces the filter called name.
func (r *Registry) Register(name string, f ports.Filter) {
	r.filters[name] = f
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.filters))
}

// Chains resolves filter names per filter type into a ports.FilterChains.
func (r *Registry) Chains(byType map[string][]string) (*Chains, error) {
	c := &Chains{chains: make(map[string][]ports.Filter, len(byType))}
	for filterType, names := range byType {
		chain := make([]ports.Filter, 0, len(names))
		for _, name := range names {
			f, ok := r.filters[name]
			if !ok {
				return nil, zerr.With(zerr.With(domain.ErrUnknownFilter, "filter", name), "filtertype", filterType)
			}
			chain = append(chain, f)
		}
		c.chains[filterType] = chain
	}
	return c, nil
}

var _ ports.FilterChains = (*Chains)(nil)

// Chains maps filter types to resolved filter chains.
type Chains struct {
	chains map[string][]ports.Filter
}

// Chain returns the filters for filterType, or nil for an unknown type.
func (c *Chains) Chain(filterType string) []ports.Filter {
	return c.chains[filterType]
}

// CopyFilter passes assets through unchanged.
type CopyFilter struct{}

// FilterAsset returns path.
func (CopyFilter) FilterAsset(path string, _ *domain.Attributes) string {
	return path
}
