package ports

import "go.trai.ch/webasset/internal/core/domain"

// ConfigLoader defines the interface for loading asset configs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and parses the asset config at path.
	// The returned config has already been validated.
	Load(path string) (*domain.AssetConfig, error)

	// Discover walks dir recursively and returns every file ending in suffix,
	// mapped to its modification time in Unix nanoseconds.
	Discover(dir, suffix string) (map[string]int64, error)
}

// ConfigParser exposes the raw fields of one parsed asset config document.
type ConfigParser interface {
	IsGlobal() bool
	Title() string
	Aliases() *domain.Attributes
	IDs() []string
	Scripts() []*domain.Attributes
	Links() []*domain.Attributes
	Metas() []*domain.Attributes
}
