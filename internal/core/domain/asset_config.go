// Package domain contains the core domain models of the web asset manager.
package domain

import "go.trai.ch/zerr"

// AssetConfig is a parsed asset configuration file.
// Instances are immutable once loaded; a reload replaces the whole value.
type AssetConfig struct {
	// IDs are the identifiers this config is bound to. Empty for the global config.
	IDs []string
	// Global marks the single config that is not id-bound.
	Global bool
	// Aliases are placeholder names and their replacements, only used by the global config.
	Aliases *Attributes
	// Title is the optional page title.
	Title   string
	Metas   []*Attributes
	Scripts []*Attributes
	Links   []*Attributes
	// Source is the file the config was loaded from.
	Source string
}

// Validate checks that a non-global config declares at least one id.
func (c *AssetConfig) Validate() error {
	if !c.Global && len(c.IDs) == 0 {
		return zerr.With(ErrMissingIDs, "source", c.Source)
	}
	return nil
}

// BindingIDs returns the ids under which the config is indexed.
func (c *AssetConfig) BindingIDs() []string {
	if c.Global {
		return []string{GlobalID}
	}
	return c.IDs
}
