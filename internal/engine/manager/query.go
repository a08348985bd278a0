package manager

import (
	"strings"
	"sync"

	"go.trai.ch/webasset/internal/core/domain"
	"golang.org/x/text/language"
)

// ScriptsFor returns the resolved and cached script attributes for id.
// Scripts that cannot be cached are left out. An unknown id yields nothing.
func (m *Manager) ScriptsFor(id string, locale language.Tag) []*domain.Attributes {
	return m.assets(&m.scripts, id, locale, func(c *domain.AssetConfig) []*domain.Attributes {
		return c.Scripts
	}, domain.FilterTypeJavascript)
}

// LinksFor returns the resolved and cached link attributes for id.
func (m *Manager) LinksFor(id string, locale language.Tag) []*domain.Attributes {
	return m.assets(&m.links, id, locale, func(c *domain.AssetConfig) []*domain.Attributes {
		return c.Links
	}, domain.FilterTypeStylesheet)
}

// MetasFor returns the resolved meta attributes for id.
func (m *Manager) MetasFor(id string, locale language.Tag) []*domain.Attributes {
	key := memoKey(id, locale)
	if v, ok := m.memo(&m.metas, key); ok {
		return cloneAll(v.([]*domain.Attributes))
	}

	cfg, ok := m.store.Config(id)
	if !ok {
		return []*domain.Attributes{}
	}

	metas := make([]*domain.Attributes, 0, len(cfg.Metas))
	for _, meta := range cfg.Metas {
		metas = append(metas, m.resolver.ResolveAttributes(meta, locale))
	}
	m.remember(&m.metas, key, cloneAll(metas))

	return metas
}

// TitleFor returns the resolved title for id. ok is false when id has no
// config or the config has no title.
func (m *Manager) TitleFor(id string, locale language.Tag) (string, bool) {
	key := memoKey(id, locale)
	if v, ok := m.memo(&m.titles, key); ok {
		title := v.(string)
		return title, title != ""
	}

	cfg, ok := m.store.Config(id)
	if !ok {
		return "", false
	}

	title := cfg.Title
	if strings.TrimSpace(title) != "" {
		title = m.resolver.Resolve(title, locale)
	}
	m.remember(&m.titles, key, title)

	return title, title != ""
}

// GlobalScripts returns the scripts of the global config.
func (m *Manager) GlobalScripts(locale language.Tag) []*domain.Attributes {
	return m.ScriptsFor(domain.GlobalID, locale)
}

// GlobalLinks returns the links of the global config.
func (m *Manager) GlobalLinks(locale language.Tag) []*domain.Attributes {
	return m.LinksFor(domain.GlobalID, locale)
}

// GlobalMetas returns the metas of the global config.
func (m *Manager) GlobalMetas(locale language.Tag) []*domain.Attributes {
	return m.MetasFor(domain.GlobalID, locale)
}

// GlobalTitle returns the title of the global config.
func (m *Manager) GlobalTitle(locale language.Tag) (string, bool) {
	return m.TitleFor(domain.GlobalID, locale)
}

// CachedPath returns the URL path of the cached copy of a raw asset path.
func (m *Manager) CachedPath(source string) (string, bool) {
	return m.pipeline.CachedPath(source)
}

// ConfigForID returns the config bound to id.
func (m *Manager) ConfigForID(id string) (*domain.AssetConfig, bool) {
	return m.store.Config(id)
}

// IDs returns every bound id in sorted order.
func (m *Manager) IDs() []string {
	return m.store.IDs()
}

// Aliases returns a copy of the current alias table.
func (m *Manager) Aliases() map[string]string {
	return m.aliases.Snapshot()
}

func (m *Manager) assets(
	memo *sync.Map,
	id string,
	locale language.Tag,
	pick func(*domain.AssetConfig) []*domain.Attributes,
	filterType string,
) []*domain.Attributes {
	key := memoKey(id, locale)
	if v, ok := m.memo(memo, key); ok {
		return cloneAll(v.([]*domain.Attributes))
	}

	cfg, ok := m.store.Config(id)
	if !ok {
		return []*domain.Attributes{}
	}

	var out []*domain.Attributes
	for _, raw := range pick(cfg) {
		attrs := m.resolver.ResolveAttributes(raw, locale)
		// An explicit filter attribute opts out of the default chain.
		if !attrs.Has(domain.AttrFilter) && !attrs.Has(domain.AttrFilterType) {
			attrs.Set(domain.AttrFilterType, filterType)
		}
		if m.pipeline.FilterAndCache(attrs) {
			out = append(out, attrs)
		}
	}
	if out == nil {
		out = []*domain.Attributes{}
	}
	m.remember(memo, key, cloneAll(out))

	return out
}

func (m *Manager) memo(memo *sync.Map, key string) (any, bool) {
	if !m.settings.Caching {
		return nil, false
	}
	return memo.Load(key)
}

func (m *Manager) remember(memo *sync.Map, key string, v any) {
	if m.settings.Caching {
		memo.Store(key, v)
	}
}

// cloneAll copies memoized results so callers never share them.
func cloneAll(attrs []*domain.Attributes) []*domain.Attributes {
	out := make([]*domain.Attributes, len(attrs))
	for i, a := range attrs {
		out[i] = a.Clone()
	}
	return out
}
