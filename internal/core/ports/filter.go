package ports

import "go.trai.ch/webasset/internal/core/domain"

// Filter transforms a single asset file.
//
//go:generate mockgen -source=filter.go -destination=mocks/mock_filter.go -package=mocks
type Filter interface {
	// FilterAsset processes the file at path and returns the path of its output.
	// Implementations never fail: on error they return path unchanged.
	FilterAsset(path string, attrs *domain.Attributes) string
}

// FilterChains resolves the ordered filter chain for a filter type.
type FilterChains interface {
	// Chain returns the filters registered for filterType, in order.
	// An unknown type yields an empty chain.
	Chain(filterType string) []Filter
}
