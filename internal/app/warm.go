package app

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/webasset/internal/adapters/messages" //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/engine/manager"
	"go.trai.ch/webasset/internal/ui/style"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// WarmOptions configures the warm command.
type WarmOptions struct {
	Options
	// IDs to resolve. Empty means every loaded id.
	IDs []string
	// Locales to resolve each id for. Empty means the configured locales.
	Locales []string
	// JSON prints the report as JSON instead of a table.
	JSON bool
	// KeepCache leaves the filtered assets on disk after the run.
	KeepCache bool
}

// Entry is the resolved asset set of one id in one locale.
type Entry struct {
	ID      string               `json:"id"`
	Locale  string               `json:"locale"`
	Title   string               `json:"title,omitempty"`
	Metas   []*domain.Attributes `json:"metas"`
	Scripts []*domain.Attributes `json:"scripts"`
	Links   []*domain.Attributes `json:"links"`
	// Dropped counts scripts and links that could not be cached.
	Dropped int `json:"dropped"`
}

// Warm starts the manager, resolves every requested id for every locale and
// prints the result.
func (a *App) Warm(ctx context.Context, opts WarmOptions) error {
	s, err := a.settings(opts.Options)
	if err != nil {
		return err
	}
	s.ReloadInterval = 0
	if opts.KeepCache {
		s.ClearCacheOnShutdown = false
	}

	localeNames := opts.Locales
	if len(localeNames) == 0 {
		localeNames = s.Locales
	}
	locales := make([]language.Tag, 0, len(localeNames))
	for _, name := range localeNames {
		tag, err := messages.ParseLocale(name)
		if err != nil {
			return err
		}
		locales = append(locales, tag)
	}

	m, err := a.newManager(s)
	if err != nil {
		return err
	}
	if err := m.Startup(ctx); err != nil {
		return err
	}
	defer m.Shutdown()

	ids := opts.IDs
	if len(ids) == 0 {
		ids = m.IDs()
	}

	entries, err := resolveAll(ctx, m, ids, locales)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.Dropped > 0 {
			a.logger.Warn(fmt.Sprintf("%d assets of %s (%s) could not be cached", e.Dropped, e.ID, e.Locale))
		}
	}

	if opts.JSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	_, err = fmt.Fprintln(a.out, renderTable(entries))
	return err
}

// resolveAll queries every id and locale pair concurrently. Entries keep the
// order of ids, then locales.
func resolveAll(ctx context.Context, m *manager.Manager, ids []string, locales []language.Tag) ([]Entry, error) {
	entries := make([]Entry, len(ids)*len(locales))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, id := range ids {
		for j, locale := range locales {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				entries[i*len(locales)+j] = resolve(m, id, locale)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

func resolve(m *manager.Manager, id string, locale language.Tag) Entry {
	e := Entry{
		ID:      id,
		Locale:  locale.String(),
		Metas:   m.MetasFor(id, locale),
		Scripts: m.ScriptsFor(id, locale),
		Links:   m.LinksFor(id, locale),
	}
	e.Title, _ = m.TitleFor(id, locale)

	if cfg, ok := m.ConfigForID(id); ok {
		e.Dropped = len(cfg.Scripts) + len(cfg.Links) - len(e.Scripts) - len(e.Links)
	}
	return e
}

func renderTable(entries []Entry) string {
	var rows [][]string
	for _, e := range entries {
		if e.Title != "" {
			rows = append(rows, []string{e.ID, e.Locale, "title", e.Title})
		}
		for _, meta := range e.Metas {
			rows = append(rows, []string{e.ID, e.Locale, "meta", formatAttributes(meta)})
		}
		for _, script := range e.Scripts {
			rows = append(rows, []string{e.ID, e.Locale, "script", script.Value(domain.AttrPath)})
		}
		for _, link := range e.Links {
			rows = append(rows, []string{e.ID, e.Locale, "link", link.Value(domain.AttrPath)})
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(style.Muted).
		Headers("ID", "LOCALE", "KIND", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.Header
			}
			return style.Cell
		}).
		String()
}

func formatAttributes(attrs *domain.Attributes) string {
	parts := make([]string, 0, attrs.Len())
	for k, v := range attrs.All() {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}
