// Package config loads asset configs and the application settings.
package config

import (
	"strings"

	assetfs "go.trai.ch/webasset/internal/adapters/fs"
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
)

// yamlMarker starts every YAML asset config. Anything else is parsed as JSON.
const yamlMarker = "---"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for JSON and YAML asset configs.
type Loader struct {
	fs     FileSystem
	walker *assetfs.Walker
}

// NewLoader creates a new Loader.
func NewLoader(fsys FileSystem, walker *assetfs.Walker) *Loader {
	return &Loader{fs: fsys, walker: walker}
}

// Load reads, parses and validates the asset config at path.
func (l *Loader) Load(path string) (*domain.AssetConfig, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return nil, zerr.With(domain.ErrConfigReadFailed, "path", path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, zerr.With(domain.ErrConfigEmpty, "path", path)
	}

	parser, err := Parse(content)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg := Build(parser)
	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Discover returns every file below dir ending in suffix with its
// modification time in Unix nanoseconds.
func (l *Loader) Discover(dir, suffix string) (map[string]int64, error) {
	if ok, err := l.fs.IsDir(dir); err != nil || !ok {
		return nil, zerr.With(domain.ErrConfigDiscoveryFailed, "dir", dir)
	}

	found := make(map[string]int64)
	for path := range l.walker.WalkFiles(dir, suffix, nil) {
		info, err := l.fs.Stat(path)
		if err != nil {
			continue
		}
		found[path] = info.ModTime().UnixNano()
	}
	return found, nil
}

// Parse selects the parser for content by its leading marker.
func Parse(content string) (ports.ConfigParser, error) {
	if strings.HasPrefix(content, yamlMarker) {
		return NewYAMLParser(content)
	}
	return NewJSONParser(content)
}

// Build converts the fields exposed by parser into an AssetConfig.
// Global configs keep their aliases and drop ids; other configs drop aliases.
func Build(parser ports.ConfigParser) *domain.AssetConfig {
	cfg := &domain.AssetConfig{
		Global:  parser.IsGlobal(),
		Aliases: domain.NewAttributes(),
	}

	if cfg.Global {
		if aliases := parser.Aliases(); aliases.Len() > 0 {
			cfg.Aliases = aliases
		}
	} else {
		cfg.IDs = parser.IDs()
	}

	if title := parser.Title(); strings.TrimSpace(title) != "" {
		cfg.Title = title
	}

	cfg.Metas = parser.Metas()
	cfg.Scripts = parser.Scripts()
	cfg.Links = parser.Links()

	return cfg
}

// bareScript expands a script given as a plain path.
func bareScript(path string) *domain.Attributes {
	return domain.NewAttributes(domain.AttrType, "text/javascript", domain.AttrPath, path)
}

// bareLink expands a link given as a plain path.
func bareLink(path string) *domain.Attributes {
	return domain.NewAttributes(domain.AttrRel, "stylesheet", domain.AttrType, "text/css", domain.AttrPath, path)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
