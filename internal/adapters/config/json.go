package config

import (
	"github.com/tidwall/gjson"
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigParser = (*JSONParser)(nil)

// JSONParser reads asset config fields from a JSON document.
// Object keys keep their document order.
type JSONParser struct {
	root gjson.Result
}

// NewJSONParser parses content, which must be a JSON object.
func NewJSONParser(content string) (*JSONParser, error) {
	if !gjson.Valid(content) {
		return nil, zerr.New("invalid json")
	}
	root := gjson.Parse(content)
	if !root.IsObject() {
		return nil, zerr.New("json config must be an object")
	}
	return &JSONParser{root: root}, nil
}

// IsGlobal reports the "global" flag.
func (p *JSONParser) IsGlobal() bool {
	return p.root.Get("global").Bool()
}

// Title returns the "title" field.
func (p *JSONParser) Title() string {
	return scalar(p.root.Get("title"))
}

// Aliases returns the "aliases" object. Blank values are dropped.
func (p *JSONParser) Aliases() *domain.Attributes {
	return jsonAttributes(p.root.Get("aliases"))
}

// IDs returns the "ids" array. A single string is accepted as one id.
func (p *JSONParser) IDs() []string {
	ids := p.root.Get("ids")
	if !ids.Exists() {
		return nil
	}
	if !ids.IsArray() {
		if id := scalar(ids); !isBlank(id) {
			return []string{id}
		}
		return nil
	}

	var out []string
	for _, id := range ids.Array() {
		if v := scalar(id); !isBlank(v) {
			out = append(out, v)
		}
	}
	return out
}

// Scripts returns the "scripts" array.
func (p *JSONParser) Scripts() []*domain.Attributes {
	return jsonTags(p.root.Get("scripts"), bareScript)
}

// Links returns the "links" array.
func (p *JSONParser) Links() []*domain.Attributes {
	return jsonTags(p.root.Get("links"), bareLink)
}

// Metas returns the "meta" array.
func (p *JSONParser) Metas() []*domain.Attributes {
	return jsonTags(p.root.Get("meta"), nil)
}

func jsonTags(list gjson.Result, bare func(string) *domain.Attributes) []*domain.Attributes {
	var tags []*domain.Attributes
	list.ForEach(func(_, item gjson.Result) bool {
		var attrs *domain.Attributes
		switch {
		case item.Type == gjson.String && bare != nil:
			attrs = bare(item.String())
		case item.IsObject():
			attrs = jsonAttributes(item)
		}
		if attrs.Len() > 0 {
			tags = append(tags, attrs)
		}
		return true
	})
	return tags
}

func jsonAttributes(obj gjson.Result) *domain.Attributes {
	attrs := domain.NewAttributes()
	if !obj.IsObject() {
		return attrs
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		if v := scalar(value); !isBlank(v) {
			attrs.Set(key.String(), v)
		}
		return true
	})
	return attrs
}

// scalar returns the text of strings, numbers and booleans, and "" otherwise.
func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.String()
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}
