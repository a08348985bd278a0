// Package alias resolves ${...} placeholders in asset attributes.
package alias

import (
	"maps"
	"sync/atomic"

	"go.trai.ch/webasset/internal/core/domain"
)

// Table holds the alias map declared by the global asset config.
// Readers never block: Replace swaps in a new map atomically.
type Table struct {
	entries atomic.Pointer[map[string]string]
}

// NewTable creates an empty Table.
func NewTable() *Table {
	t := &Table{}
	t.Clear()
	return t
}

// Replace swaps the whole alias map for the given attributes.
func (t *Table) Replace(aliases *domain.Attributes) {
	m := aliases.Map()
	t.entries.Store(&m)
}

// Lookup returns the value of the alias key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := (*t.entries.Load())[key]
	return v, ok
}

// Len returns the number of aliases.
func (t *Table) Len() int {
	return len(*t.entries.Load())
}

// Snapshot returns a copy of the current aliases.
func (t *Table) Snapshot() map[string]string {
	return maps.Clone(*t.entries.Load())
}

// Clear removes every alias.
func (t *Table) Clear() {
	m := map[string]string{}
	t.entries.Store(&m)
}
