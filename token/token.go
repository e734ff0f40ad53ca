/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the flat, level-indexed token stream shared by the
// markdown parser, the task list transform and the HTML renderer.
package token

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Nesting is the level change a token introduces.
type Nesting int

const (
	// Closing tokens end a container opened earlier at the same level.
	Closing Nesting = -1
	// SelfClosing tokens neither open nor close a container.
	SelfClosing Nesting = 0
	// Opening tokens start a container.
	Opening Nesting = 1
)

// SourceMap locates a token in the original source.
// Lines are 0-based; End is exclusive.
type SourceMap struct {
	Start int
	End   int
}

// MarshalJSON encodes the map as [start, end].
func (m SourceMap) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{m.Start, m.End})
}

// UnmarshalJSON decodes the [start, end] form.
func (m *SourceMap) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	m.Start, m.End = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes the map as a flow sequence.
func (m SourceMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, n := range []int{m.Start, m.End} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(n),
		})
	}
	return node, nil
}

// UnmarshalYAML decodes the sequence form.
func (m *SourceMap) UnmarshalYAML(node *yaml.Node) error {
	var pair [2]int
	if err := node.Decode(&pair); err != nil {
		return err
	}
	m.Start, m.End = pair[0], pair[1]
	return nil
}

// Token is a node in a flattened, pre-order document tree.
type Token struct {
	// Type identifies the token's semantic role (e.g. "list_item_open", "inline").
	Type string `json:"type" yaml:"type"`

	// Tag is the HTML tag name the token renders to. May be empty.
	Tag string `json:"tag" yaml:"tag"`

	// Attrs holds the token's HTML attributes in insertion order.
	Attrs Attrs `json:"attrs" yaml:"attrs,omitempty"`

	// Map is the source line range, nil when unknown.
	Map *SourceMap `json:"map" yaml:"map,omitempty"`

	// Nesting is -1, 0 or 1 for closing, self-contained and opening tokens.
	Nesting Nesting `json:"nesting" yaml:"nesting"`

	// Level is the nesting depth, consistent with cumulative Nesting.
	Level int `json:"level" yaml:"level"`

	// Children are the inline tokens of an "inline" token.
	Children []*Token `json:"children" yaml:"children,omitempty"`

	// Content is the raw text of text-bearing tokens.
	Content string `json:"content" yaml:"content,omitempty"`

	// Markup is the source markup that produced the token ("*", "-", "```").
	Markup string `json:"markup" yaml:"markup,omitempty"`

	// Info is the fence info string.
	Info string `json:"info" yaml:"info,omitempty"`

	// Meta is arbitrary data attached by rules.
	Meta any `json:"meta" yaml:"meta,omitempty"`

	// Block is true for block-level tokens.
	Block bool `json:"block" yaml:"block"`

	// Hidden tokens are skipped by the renderer (tight list paragraphs).
	Hidden bool `json:"hidden" yaml:"hidden,omitempty"`
}

// New creates a token with the given type, tag and nesting.
func New(typ, tag string, nesting Nesting) *Token {
	return &Token{
		Type:    typ,
		Tag:     tag,
		Nesting: nesting,
	}
}

// StartLine returns the first source line and whether a source map exists.
func (t *Token) StartLine() (int, bool) {
	if t.Map == nil {
		return 0, false
	}
	return t.Map.Start, true
}

// AttrGet returns the value of the named attribute, or "" when absent.
func (t *Token) AttrGet(name string) string {
	v, _ := t.Attrs.Get(name)
	return v
}

// AttrSet sets the named attribute, overwriting any existing value.
func (t *Token) AttrSet(name, value string) {
	t.Attrs.Set(name, value)
}

// AttrJoin appends value to the named attribute separated by a space.
func (t *Token) AttrJoin(name, value string) {
	t.Attrs.Join(name, value)
}

// Walk visits every token in the stream in order, descending into inline
// children right after their parent. Returning false stops the walk.
func Walk(tokens []*Token, fn func(tok *Token, parent *Token) bool) bool {
	for _, tok := range tokens {
		if !walk(tok, nil, fn) {
			return false
		}
	}
	return true
}

func walk(tok, parent *Token, fn func(tok *Token, parent *Token) bool) bool {
	if !fn(tok, parent) {
		return false
	}
	for _, child := range tok.Children {
		if !walk(child, tok, fn) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the token and its children. Meta is shared.
func (t *Token) Clone() *Token {
	cp := *t
	cp.Attrs = t.Attrs.Clone()
	if t.Map != nil {
		m := *t.Map
		cp.Map = &m
	}
	cp.Children = CloneAll(t.Children)
	return &cp
}

// CloneAll deep-copies a token slice.
func CloneAll(tokens []*Token) []*Token {
	if tokens == nil {
		return nil
	}
	out := make([]*Token, len(tokens))
	for i, t := range tokens {
		out[i] = t.Clone()
	}
	return out
}
