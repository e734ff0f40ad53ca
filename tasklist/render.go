/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"strings"

	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/token"
)

// CheckboxClass is the class of every rendered checkbox.
const CheckboxClass = "task-list-item-checkbox"

// RenderCheckbox renders a checkbox token as a self-closing input.
// data-line is emitted only when lineNumber is set and the token has a line.
func RenderCheckbox(tok *token.Token, lineNumber bool) string {
	var sb strings.Builder
	sb.WriteString(`<input class="` + CheckboxClass + `" type="checkbox" `)
	if tok.Attrs.Has("checked") {
		sb.WriteString(`checked="" `)
	}
	if tok.Attrs.Has("disabled") {
		sb.WriteString(`disabled="" `)
	}
	if line, ok := tok.Attrs.Get("line"); ok && lineNumber && line != "" {
		sb.WriteString(`data-line="` + markdown.Escape(line) + `" `)
	}
	sb.WriteString(`id="` + markdown.Escape(tok.AttrGet("id")) + `" />`)
	return sb.String()
}

// RenderLabelOpen renders a label bound to the checkbox with the token's id.
func RenderLabelOpen(tok *token.Token) string {
	return `<label for="` + markdown.Escape(tok.AttrGet("id")) + `">`
}

// RenderLabelClose renders the closing label tag.
func RenderLabelClose() string {
	return "</label>"
}

// Rules returns the render rules for the synthesized token types, keyed by
// token type.
func (t *Transformer) Rules() map[string]markdown.RenderRule {
	lineNumber := t.opts.LineNumber
	return map[string]markdown.RenderRule{
		TypeCheckbox: func(tokens []*token.Token, idx int, _ *markdown.Renderer) string {
			return RenderCheckbox(tokens[idx], lineNumber)
		},
		TypeLabelOpen: func(tokens []*token.Token, idx int, _ *markdown.Renderer) string {
			return RenderLabelOpen(tokens[idx])
		},
		TypeLabelClose: func(_ []*token.Token, _ int, _ *markdown.Renderer) string {
			return RenderLabelClose()
		},
	}
}
