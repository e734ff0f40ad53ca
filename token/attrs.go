/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"gopkg.in/yaml.v3"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list with unique names.
// The zero value is an empty list ready to use.
type Attrs struct {
	list []Attr
}

// NewAttrs builds an attribute list from name/value pairs.
// Later duplicates overwrite earlier values.
func NewAttrs(pairs ...Attr) Attrs {
	var a Attrs
	for _, p := range pairs {
		a.Set(p.Name, p.Value)
	}
	return a
}

func (a *Attrs) index(name string) int {
	for i, attr := range a.list {
		if attr.Name == name {
			return i
		}
	}
	return -1
}

// Len returns the number of attributes.
func (a Attrs) Len() int {
	return len(a.list)
}

// Get returns the named attribute's value.
func (a Attrs) Get(name string) (string, bool) {
	if i := a.index(name); i >= 0 {
		return a.list[i].Value, true
	}
	return "", false
}

// Has reports whether the named attribute is present.
func (a Attrs) Has(name string) bool {
	return a.index(name) >= 0
}

// Set overwrites the named attribute or appends it when absent.
func (a *Attrs) Set(name, value string) {
	if i := a.index(name); i >= 0 {
		a.list[i].Value = value
		return
	}
	a.list = append(a.list, Attr{Name: name, Value: value})
}

// Join appends value to the named attribute, separated by a single space.
// Join is append-only: it never deduplicates.
func (a *Attrs) Join(name, value string) {
	i := a.index(name)
	if i < 0 {
		a.list = append(a.list, Attr{Name: name, Value: value})
		return
	}
	if a.list[i].Value == "" {
		a.list[i].Value = value
		return
	}
	a.list[i].Value += " " + value
}

// Del removes the named attribute.
func (a *Attrs) Del(name string) {
	if i := a.index(name); i >= 0 {
		a.list = append(a.list[:i], a.list[i+1:]...)
	}
}

// HasClass reports whether the class attribute contains name as a whole
// space-separated word.
func (a Attrs) HasClass(name string) bool {
	classes, ok := a.Get("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// All iterates attributes in insertion order.
func (a Attrs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, attr := range a.list {
			if !yield(attr.Name, attr.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes attributes as [["name","value"],...], or null when empty.
func (a Attrs) MarshalJSON() ([]byte, error) {
	if len(a.list) == 0 {
		return []byte("null"), nil
	}
	pairs := make([][2]string, 0, len(a.list))
	for _, attr := range a.list {
		pairs = append(pairs, [2]string{attr.Name, attr.Value})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes the [["name","value"],...] form.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	var pairs [][]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("failed to parse attrs: %w", err)
	}
	return a.fromPairs(pairs)
}

// IsZero lets yaml omitempty skip empty lists.
func (a Attrs) IsZero() bool {
	return len(a.list) == 0
}

// MarshalYAML encodes attributes as a sequence of two-element sequences.
func (a Attrs) MarshalYAML() (any, error) {
	pairs := make([][]string, 0, len(a.list))
	for _, attr := range a.list {
		pairs = append(pairs, []string{attr.Name, attr.Value})
	}
	return pairs, nil
}

// UnmarshalYAML decodes the sequence form.
func (a *Attrs) UnmarshalYAML(node *yaml.Node) error {
	var pairs [][]string
	if err := node.Decode(&pairs); err != nil {
		return fmt.Errorf("failed to parse attrs: %w", err)
	}
	return a.fromPairs(pairs)
}

func (a *Attrs) fromPairs(pairs [][]string) error {
	a.list = nil
	for _, p := range pairs {
		if len(p) != 2 {
			return fmt.Errorf("%w: attribute pair has %d elements", ErrInvalidAttr, len(p))
		}
		a.Set(p[0], p[1])
	}
	return nil
}

// Clone returns an independent copy.
func (a Attrs) Clone() Attrs {
	if a.list == nil {
		return Attrs{}
	}
	return Attrs{list: append([]Attr(nil), a.list...)}
}

// Equal reports whether both lists hold the same pairs in the same order.
func (a Attrs) Equal(b Attrs) bool {
	if len(a.list) != len(b.list) {
		return false
	}
	for i := range a.list {
		if a.list[i] != b.list[i] {
			return false
		}
	}
	return true
}
