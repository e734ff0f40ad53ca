/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markdown

import (
	"strings"

	"bennypowers.dev/mdtasks/token"
)

// RenderRule renders tokens[idx] to an HTML fragment.
type RenderRule func(tokens []*token.Token, idx int, r *Renderer) string

// Renderer turns a token stream into HTML using a rule table keyed by
// token type. Types without a rule are rendered generically from their
// tag, attributes and nesting.
type Renderer struct {
	rules map[string]RenderRule
}

// NewRenderer creates a renderer with the default rules.
func NewRenderer() *Renderer {
	return &Renderer{
		rules: map[string]RenderRule{
			"text":        renderText,
			"softbreak":   renderSoftbreak,
			"hardbreak":   renderHardbreak,
			"code_inline": renderCodeInline,
			"code_block":  renderCodeBlock,
			"fence":       renderFence,
			"html_block":  renderHTML,
			"html_inline": renderHTML,
			"image":       renderImage,
		},
	}
}

// SetRule registers fn for tokenType, replacing any existing rule.
func (r *Renderer) SetRule(tokenType string, fn RenderRule) {
	r.rules[tokenType] = fn
}

// Rule returns the rule registered for tokenType.
func (r *Renderer) Rule(tokenType string) (RenderRule, bool) {
	fn, ok := r.rules[tokenType]
	return fn, ok
}

// Render renders a block-level token stream.
func (r *Renderer) Render(tokens []*token.Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if tok.Type == "inline" {
			sb.WriteString(r.RenderInline(tok.Children))
			continue
		}
		if fn, ok := r.rules[tok.Type]; ok {
			sb.WriteString(fn(tokens, i, r))
			continue
		}
		sb.WriteString(r.RenderToken(tokens, i))
	}
	return sb.String()
}

// RenderInline renders the children of an inline token.
func (r *Renderer) RenderInline(tokens []*token.Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if fn, ok := r.rules[tok.Type]; ok {
			sb.WriteString(fn(tokens, i, r))
			continue
		}
		sb.WriteString(r.RenderToken(tokens, i))
	}
	return sb.String()
}

// RenderToken renders a single token from its tag, attributes and nesting.
// Block tokens are followed by a newline unless the next token continues
// the same line.
func (r *Renderer) RenderToken(tokens []*token.Token, idx int) string {
	tok := tokens[idx]
	if tok.Hidden {
		return ""
	}

	var sb strings.Builder
	if tok.Block && tok.Nesting != token.Closing && idx > 0 && tokens[idx-1].Hidden {
		sb.WriteByte('\n')
	}

	if tok.Nesting == token.Closing {
		sb.WriteString("</")
	} else {
		sb.WriteByte('<')
	}
	sb.WriteString(tok.Tag)
	sb.WriteString(RenderAttrs(tok))
	if tok.Nesting == token.SelfClosing {
		sb.WriteString(" /")
	}

	needLF := false
	if tok.Block {
		needLF = true
		if tok.Nesting == token.Opening && idx+1 < len(tokens) {
			next := tokens[idx+1]
			if next.Type == "inline" || next.Hidden {
				needLF = false
			} else if next.Nesting == token.Closing && next.Tag == tok.Tag {
				needLF = false
			}
		}
	}
	if needLF {
		sb.WriteString(">\n")
	} else {
		sb.WriteByte('>')
	}
	return sb.String()
}

// RenderAttrs renders a token's attributes with a leading space each.
func RenderAttrs(tok *token.Token) string {
	var sb strings.Builder
	for name, value := range tok.Attrs.All() {
		sb.WriteByte(' ')
		sb.WriteString(Escape(name))
		sb.WriteString(`="`)
		sb.WriteString(Escape(value))
		sb.WriteByte('"')
	}
	return sb.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape escapes text for use in HTML content and attribute values.
// Single quotes are left alone, as markdown-it does.
func Escape(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return htmlEscaper.Replace(s)
}

func renderText(tokens []*token.Token, idx int, _ *Renderer) string {
	return Escape(tokens[idx].Content)
}

func renderSoftbreak(_ []*token.Token, _ int, _ *Renderer) string {
	return "\n"
}

func renderHardbreak(_ []*token.Token, _ int, _ *Renderer) string {
	return "<br />\n"
}

func renderCodeInline(tokens []*token.Token, idx int, _ *Renderer) string {
	tok := tokens[idx]
	return "<code" + RenderAttrs(tok) + ">" + Escape(tok.Content) + "</code>"
}

func renderCodeBlock(tokens []*token.Token, idx int, _ *Renderer) string {
	tok := tokens[idx]
	return "<pre" + RenderAttrs(tok) + "><code>" + Escape(tok.Content) + "</code></pre>\n"
}

func renderFence(tokens []*token.Token, idx int, _ *Renderer) string {
	tok := tokens[idx]
	class := ""
	if lang, _, _ := strings.Cut(strings.TrimSpace(tok.Info), " "); lang != "" {
		class = ` class="language-` + Escape(lang) + `"`
	}
	return "<pre><code" + class + ">" + Escape(tok.Content) + "</code></pre>\n"
}

func renderHTML(tokens []*token.Token, idx int, _ *Renderer) string {
	return tokens[idx].Content
}

func renderImage(tokens []*token.Token, idx int, _ *Renderer) string {
	return "<img" + RenderAttrs(tokens[idx]) + " />"
}
