// Package messages implements a locale aware message source over YAML bundles.
package messages

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var _ ports.MessageSource = (*Bundle)(nil)

// Bundle resolves message codes from <basename>[_<lang>[_<REGION>]].yaml files.
// The most specific file defining a code wins. Nested keys are joined with dots.
type Bundle struct {
	fsys     fs.FS
	basename string

	mu    sync.RWMutex
	files map[string]map[string]string
}

// NewBundle creates a Bundle reading files from fsys.
func NewBundle(fsys fs.FS, basename string) *Bundle {
	if basename == "" {
		basename = domain.DefaultMessagesBasename
	}
	return &Bundle{
		fsys:     fsys,
		basename: basename,
		files:    make(map[string]map[string]string),
	}
}

// Message returns the message for code in locale.
func (b *Bundle) Message(code string, locale language.Tag) (string, error) {
	for _, name := range b.candidates(locale) {
		msgs, err := b.load(name)
		if err != nil {
			return "", err
		}
		if msg, ok := msgs[code]; ok {
			return msg, nil
		}
	}
	return "", domain.ErrNoSuchMessage
}

// candidates lists bundle files from most to least specific.
func (b *Bundle) candidates(locale language.Tag) []string {
	names := make([]string, 0, 3)

	base, conf := locale.Base()
	if conf != language.No && locale != language.Und {
		if region, rconf := locale.Region(); rconf == language.Exact {
			names = append(names, fmt.Sprintf("%s_%s_%s.yaml", b.basename, base, region))
		}
		names = append(names, fmt.Sprintf("%s_%s.yaml", b.basename, base))
	}

	return append(names, b.basename+".yaml")
}

// load reads and flattens a bundle file once. Missing files are empty bundles.
func (b *Bundle) load(name string) (map[string]string, error) {
	b.mu.RLock()
	msgs, ok := b.files[name]
	b.mu.RUnlock()
	if ok {
		return msgs, nil
	}

	data, err := fs.ReadFile(b.fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		msgs = map[string]string{}
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMessagesReadFailed.Error()), "file", name)
	default:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMessagesParseFailed.Error()), "file", name)
		}
		msgs = make(map[string]string)
		flatten("", raw, msgs)
	}

	b.mu.Lock()
	b.files[name] = msgs
	b.mu.Unlock()

	return msgs, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(key, v, out)
		case nil:
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

// ParseLocale parses a BCP 47 locale such as "en-US" or "en_US".
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, zerr.With(zerr.Wrap(err, domain.ErrInvalidLocale.Error()), "locale", s)
	}
	return tag, nil
}
