package manager

import (
	"slices"
	"sync"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/webasset/internal/engine/alias"
)

// Store indexes loaded asset configs by id.
type Store struct {
	loader  ports.ConfigLoader
	aliases *alias.Table
	metrics ports.Metrics

	mu      sync.RWMutex
	configs map[string]*domain.AssetConfig
}

// NewStore creates an empty Store. Aliases from a global config are
// published to aliases.
func NewStore(loader ports.ConfigLoader, aliases *alias.Table, metrics ports.Metrics) *Store {
	return &Store{
		loader:  loader,
		aliases: aliases,
		metrics: metrics,
		configs: make(map[string]*domain.AssetConfig),
	}
}

// Load parses the config at path and binds it. A global config replaces the
// global binding and, when it declares aliases, the whole alias table.
// Any other config is bound to each of its ids, last load wins. On error
// nothing is unbound.
func (s *Store) Load(path string) (*domain.AssetConfig, error) {
	cfg, err := s.loader.Load(path)
	if err != nil {
		s.metrics.RecordConfigLoad(false)
		return nil, err
	}
	s.metrics.RecordConfigLoad(true)

	if cfg.Global && cfg.Aliases.Len() > 0 {
		s.aliases.Replace(cfg.Aliases)
	}

	s.mu.Lock()
	for _, id := range cfg.BindingIDs() {
		s.configs[id] = cfg
	}
	s.mu.Unlock()

	return cfg, nil
}

// Config returns the config bound to id.
func (s *Store) Config(id string) (*domain.AssetConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[id]
	return cfg, ok
}

// IDs returns every bound id in sorted order. The global id is included
// when a global config was loaded.
func (s *Store) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.configs))
	for id := range s.configs {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Reset unbinds every config.
func (s *Store) Reset() {
	s.mu.Lock()
	clear(s.configs)
	s.mu.Unlock()
}
