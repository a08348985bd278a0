// Package pipeline filters raw assets and publishes their content addressed copies.
package pipeline

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	assetfs "go.trai.ch/webasset/internal/adapters/fs"
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// externalPattern matches http, https and protocol relative URLs.
var externalPattern = regexp.MustCompile(`^(https?)?:?//.*`)

// Options configures a Pipeline.
type Options struct {
	// Root is the web root that asset paths are relative to.
	Root string
	// CacheDir is the cache directory relative to Root, used to build URL paths.
	CacheDir string
	// AssetPrefixes are stripped from asset paths to form the cache sub path.
	// The first matching prefix wins.
	AssetPrefixes []string
	// RemoveTempResources removes the working directory after filtering.
	RemoveTempResources bool
	// TempDir is where working directories are created. Empty means os.TempDir.
	TempDir string
}

// Pipeline runs raw assets through their filter chain and writes the result
// into the cache store under a checksum derived name.
type Pipeline struct {
	opts    Options
	store   ports.CacheStore
	chains  ports.FilterChains
	hasher  ports.Hasher
	metrics ports.Metrics
	logger  ports.Logger

	index sync.Map // raw asset path -> domain.CacheEntry
	group singleflight.Group
}

// New creates a Pipeline.
func New(
	opts Options,
	store ports.CacheStore,
	chains ports.FilterChains,
	hasher ports.Hasher,
	metrics ports.Metrics,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		opts:    opts,
		store:   store,
		chains:  chains,
		hasher:  hasher,
		metrics: metrics,
		logger:  logger,
	}
}

// IsExternal reports whether assetPath points outside the web root.
func IsExternal(assetPath string) bool {
	return externalPattern.MatchString(assetPath)
}

// FilterAndCache makes sure the asset named by the path attribute has a
// filtered copy in the cache and rewrites the path attribute to that copy.
// External URLs are accepted unchanged. It returns false when the asset has
// no path, does not exist, or could not be filtered; failures are logged.
func (p *Pipeline) FilterAndCache(attrs *domain.Attributes) bool {
	assetPath, ok := attrs.Get(domain.AttrPath)
	if !ok {
		return false
	}
	if IsExternal(assetPath) {
		return true
	}

	source := filepath.Join(p.opts.Root, filepath.FromSlash(assetPath))
	info, err := os.Stat(source)
	if err != nil || info.IsDir() {
		p.logger.Debug("asset not found: " + source)
		p.metrics.RecordFilterFailure()
		return false
	}
	modTime := info.ModTime().UnixNano()

	if cached, ok := p.fresh(assetPath, modTime); ok {
		p.metrics.RecordCacheHit()
		attrs.Set(domain.AttrPath, cached)
		return true
	}

	v, err, _ := p.group.Do(assetPath, func() (any, error) {
		// A concurrent flight may have finished while this one waited.
		if cached, ok := p.fresh(assetPath, modTime); ok {
			return cached, nil
		}
		p.metrics.RecordCacheMiss()
		return p.filter(assetPath, source, modTime, attrs)
	})
	if err != nil {
		p.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrFilterFailed.Error()), "path", assetPath))
		p.metrics.RecordFilterFailure()
		return false
	}

	attrs.Set(domain.AttrPath, v.(string))
	return true
}

func (p *Pipeline) fresh(assetPath string, modTime int64) (string, bool) {
	v, ok := p.index.Load(assetPath)
	if !ok {
		return "", false
	}
	entry := v.(domain.CacheEntry)
	if !entry.Fresh(modTime) {
		return "", false
	}
	return entry.CachedPath, true
}

func (p *Pipeline) filter(assetPath, source string, modTime int64, attrs *domain.Attributes) (string, error) {
	p.logger.Info("filtering and caching " + source)

	workDir, err := os.MkdirTemp(p.opts.TempDir, domain.WorkDirPattern)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrAssetCopyFailed.Error())
	}
	if p.opts.RemoveTempResources {
		defer os.RemoveAll(workDir) //nolint:errcheck // Best effort cleanup
	}

	subPath := p.subPath(assetPath)
	working := filepath.Join(workDir, filepath.FromSlash(subPath), path.Base(assetPath))
	if err := assetfs.CopyFile(source, working); err != nil {
		return "", zerr.Wrap(err, domain.ErrAssetCopyFailed.Error())
	}

	for _, f := range p.chains.Chain(attrs.Value(domain.AttrFilterType)) {
		working = f.FilterAsset(working, attrs)
	}

	data, err := os.ReadFile(working)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "file", working)
	}

	name := domain.CacheName(filepath.Base(working), p.hasher.Checksum(data))
	rel := strings.TrimPrefix(path.Join(subPath, name), "/")

	written, err := p.store.Put(rel, data)
	if err != nil {
		return "", err
	}
	if written {
		p.logger.Debug("added " + assetPath + " to cache as " + rel)
	} else {
		p.logger.Debug("existing file " + rel + " in cache, no copy")
	}

	cached := p.urlPath(rel)
	p.index.Store(assetPath, domain.CacheEntry{SourceModTime: modTime, CachedPath: cached})

	return cached, nil
}

// subPath strips the first matching asset prefix and returns the directory
// part of what remains, e.g. /WEB-INF/static/js/app.js -> /js.
func (p *Pipeline) subPath(assetPath string) string {
	for _, prefix := range p.opts.AssetPrefixes {
		if strings.HasPrefix(assetPath, prefix) {
			assetPath = strings.TrimPrefix(assetPath, prefix)
			break
		}
	}
	return path.Dir(assetPath)
}

// urlPath joins the cache directory and a cache relative path into an
// absolute URL path with single slashes.
func (p *Pipeline) urlPath(rel string) string {
	var parts []string
	for _, s := range strings.Split(p.opts.CacheDir+"/"+rel, "/") {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// CachedPath returns the URL path of the cached copy of the raw asset path.
func (p *Pipeline) CachedPath(assetPath string) (string, bool) {
	v, ok := p.index.Load(assetPath)
	if !ok {
		return "", false
	}
	return v.(domain.CacheEntry).CachedPath, true
}

// Entries returns the number of indexed assets.
func (p *Pipeline) Entries() int {
	n := 0
	p.index.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// ClearDisk removes every cached file from the store.
func (p *Pipeline) ClearDisk() error {
	p.logger.Info("clearing asset disk cache")
	return p.store.Clear()
}

// Reset forgets every indexed asset.
func (p *Pipeline) Reset() {
	p.index.Clear()
}
