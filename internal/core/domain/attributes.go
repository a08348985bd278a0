package domain

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Attributes is an ordered mapping of string keys to string values.
// It describes a single script, link or meta tag. Keys keep the order in which
// they were first set, which keeps rendered tags stable across reloads.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes creates Attributes from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewAttributes(pairs ...string) *Attributes {
	a := &Attributes{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(pairs[i], pairs[i+1])
	}
	return a
}

// Get returns the value for key and whether it was present.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

// Value returns the value for key, or the empty string.
func (a *Attributes) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set stores value under key. Existing keys keep their position.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Delete removes key.
func (a *Attributes) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	a.keys = slices.DeleteFunc(a.keys, func(k string) bool { return k == key })
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// All yields key/value pairs in insertion order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{values: make(map[string]string, a.Len())}
	for k, v := range a.All() {
		c.Set(k, v)
	}
	return c
}

// Map returns the attributes as an unordered map.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the attributes as a JSON object in insertion order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range a.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
