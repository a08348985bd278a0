package config

import (
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigParser = (*YAMLParser)(nil)

// YAMLParser reads asset config fields from a YAML document.
// Mapping keys keep their document order.
type YAMLParser struct {
	root *yaml.Node
}

// NewYAMLParser parses content, whose top level must be a mapping.
func NewYAMLParser(content string) (*YAMLParser, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, zerr.Wrap(err, "invalid yaml")
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, zerr.New("yaml config must be a mapping")
	}
	return &YAMLParser{root: doc.Content[0]}, nil
}

// IsGlobal reports the "global" flag.
func (p *YAMLParser) IsGlobal() bool {
	node := lookup(p.root, "global")
	if node == nil {
		return false
	}
	var global bool
	if err := node.Decode(&global); err != nil {
		return false
	}
	return global
}

// Title returns the "title" field.
func (p *YAMLParser) Title() string {
	return yamlScalar(lookup(p.root, "title"))
}

// Aliases returns the "aliases" mapping. Blank values are dropped.
func (p *YAMLParser) Aliases() *domain.Attributes {
	return yamlAttributes(lookup(p.root, "aliases"))
}

// IDs returns the "ids" sequence. A single scalar is accepted as one id.
func (p *YAMLParser) IDs() []string {
	node := lookup(p.root, "ids")
	if node == nil {
		return nil
	}
	if node.Kind == yaml.ScalarNode {
		if id := yamlScalar(node); !isBlank(id) {
			return []string{id}
		}
		return nil
	}

	var ids []string
	for _, item := range node.Content {
		if id := yamlScalar(item); !isBlank(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Scripts returns the "scripts" sequence.
func (p *YAMLParser) Scripts() []*domain.Attributes {
	return yamlTags(lookup(p.root, "scripts"), bareScript)
}

// Links returns the "links" sequence.
func (p *YAMLParser) Links() []*domain.Attributes {
	return yamlTags(lookup(p.root, "links"), bareLink)
}

// Metas returns the "meta" sequence.
func (p *YAMLParser) Metas() []*domain.Attributes {
	return yamlTags(lookup(p.root, "meta"), nil)
}

// lookup returns the value node for key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return resolveAlias(mapping.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func yamlTags(seq *yaml.Node, bare func(string) *domain.Attributes) []*domain.Attributes {
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil
	}

	var tags []*domain.Attributes
	for _, item := range seq.Content {
		item = resolveAlias(item)

		var attrs *domain.Attributes
		switch {
		case item.Kind == yaml.ScalarNode && bare != nil:
			if path := yamlScalar(item); !isBlank(path) {
				attrs = bare(path)
			}
		case item.Kind == yaml.MappingNode:
			attrs = yamlAttributes(item)
		}
		if attrs.Len() > 0 {
			tags = append(tags, attrs)
		}
	}
	return tags
}

func yamlAttributes(mapping *yaml.Node) *domain.Attributes {
	attrs := domain.NewAttributes()
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return attrs
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if v := yamlScalar(resolveAlias(mapping.Content[i+1])); !isBlank(v) {
			attrs.Set(mapping.Content[i].Value, v)
		}
	}
	return attrs
}

// yamlScalar returns the text of a non-null scalar node, and "" otherwise.
func yamlScalar(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}
