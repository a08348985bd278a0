package alias

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"golang.org/x/text/language"
)

// tokenPattern matches the shortest ${...} run, so "${a}x${b}" yields two tokens.
var tokenPattern = regexp.MustCompile(`\$\{.*?\}`)

// Resolver substitutes ${key} tokens with alias values or localized messages.
type Resolver struct {
	table    *Table
	messages ports.MessageSource
	logger   ports.Logger
}

// NewResolver creates a Resolver. messages may be nil, in which case only
// aliases are substituted.
func NewResolver(table *Table, messages ports.MessageSource, logger ports.Logger) *Resolver {
	return &Resolver{
		table:    table,
		messages: messages,
		logger:   logger,
	}
}

// Resolve replaces every ${key} token in text in a single left to right pass.
// An alias wins over a message. Unknown tokens are left verbatim and
// substituted text is never scanned again.
func (r *Resolver) Resolve(text string, locale language.Tag) string {
	if !strings.Contains(text, "${") || !strings.Contains(text, "}") {
		return text
	}

	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		key := token[2 : len(token)-1]
		if v, ok := r.table.Lookup(key); ok {
			return v
		}
		if v, ok := r.message(key, locale); ok {
			return v
		}
		return token
	})
}

func (r *Resolver) message(key string, locale language.Tag) (string, bool) {
	if r.messages == nil {
		return "", false
	}

	msg, err := r.messages.Message(key, locale)
	if err == nil {
		return msg, true
	}
	if !errors.Is(err, domain.ErrNoSuchMessage) {
		r.logger.Warn(fmt.Sprintf("message lookup for %q (%s) failed: %v", key, locale, err))
	}
	return "", false
}

// ResolveAttributes returns a copy of attrs with every value resolved.
// attrs itself is not modified.
func (r *Resolver) ResolveAttributes(attrs *domain.Attributes, locale language.Tag) *domain.Attributes {
	out := domain.NewAttributes()
	for k, v := range attrs.All() {
		out.Set(k, r.Resolve(v, locale))
	}
	return out
}
