/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"slices"
	"strconv"

	"bennypowers.dev/mdtasks/token"
)

// Token types produced by the transform.
const (
	TypeCheckbox   = "task_checkbox"
	TypeLabelOpen  = "task_label_open"
	TypeLabelClose = "task_label_close"
)

func newCheckbox(inline *token.Token, opts Options, id string, checked bool) *token.Token {
	cb := token.New(TypeCheckbox, "input", token.SelfClosing)
	cb.Level = inline.Children[0].Level
	if !opts.Enabled {
		cb.AttrSet("disabled", "true")
	}
	if line, ok := inline.StartLine(); ok {
		cb.AttrSet("line", strconv.Itoa(line))
	}
	cb.AttrSet("id", id)
	if checked {
		cb.AttrSet("checked", "true")
	}
	return cb
}

func newLabelOpen(level int, id string) *token.Token {
	tok := token.New(TypeLabelOpen, "label", token.Opening)
	tok.Level = level
	tok.AttrSet("id", id)
	return tok
}

func newLabelClose(level int) *token.Token {
	tok := token.New(TypeLabelClose, "label", token.Closing)
	tok.Level = level
	return tok
}

// Rewrite inserts a checkbox as the first child of inline, strips the marker
// from the original first child and, with opts.Label, wraps the remaining
// children in a label. It reports false and leaves inline untouched when the
// first child is not a text token that itself starts with the marker, which
// happens when inline has no children or a line break follows "[ ]".
func Rewrite(inline *token.Token, opts Options, id string) bool {
	if len(inline.Children) == 0 {
		return false
	}
	first := inline.Children[0]
	if first.Type != "text" {
		return false
	}
	if _, ok := ParseMarker(first.Content); !ok {
		return false
	}

	m, _ := ParseMarker(inline.Content)
	level := inline.Children[0].Level

	inline.Children = slices.Insert(inline.Children, 0, newCheckbox(inline, opts, id, m.Checked))
	inline.Children[1].Content = StripMarker(inline.Children[1].Content)

	if opts.Label {
		inline.Children = slices.Insert(inline.Children, 1, newLabelOpen(level, id))
		inline.Children = append(inline.Children, newLabelClose(level))
	}
	return true
}
