/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markdown

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"bennypowers.dev/mdtasks/token"
)

// Parser flattens goldmark's AST into a token stream.
// Only core CommonMark is enabled so task markers stay literal text.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a CommonMark parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse returns the fully expanded token stream for src.
func (p *Parser) Parse(src []byte) []*token.Token {
	state := &State{Src: src}
	p.parseBlocks(state)
	p.parseInlines(state)
	return state.Tokens
}

// parseBlocks fills state.Tokens with block tokens. Inline tokens are left
// without children until parseInlines runs.
func (p *Parser) parseBlocks(state *State) {
	state.doc = p.md.Parser().Parse(text.NewReader(state.Src))
	b := newBuilder(state.Src)
	b.block(state.doc, false)
	state.Tokens = b.tokens
	state.inlines = b.inlines
}

// parseInlines expands the children of every inline token recorded by
// parseBlocks.
func (p *Parser) parseInlines(state *State) {
	for _, tok := range state.Tokens {
		node, ok := state.inlines[tok]
		if !ok {
			continue
		}
		ib := &inlineBuilder{src: state.Src}
		ib.children(node)
		tok.Children = ib.tokens
	}
	state.inlines = nil
}

type builder struct {
	src        []byte
	lineStarts []int
	level      int
	tokens     []*token.Token
	inlines    map[*token.Token]ast.Node
}

func newBuilder(src []byte) *builder {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return &builder{
		src:        src,
		lineStarts: starts,
		inlines:    make(map[*token.Token]ast.Node),
	}
}

func (b *builder) push(typ, tag string, nesting token.Nesting) *token.Token {
	tok := token.New(typ, tag, nesting)
	if nesting == token.Closing {
		b.level--
	}
	tok.Level = b.level
	tok.Block = true
	if nesting == token.Opening {
		b.level++
	}
	b.tokens = append(b.tokens, tok)
	return tok
}

func (b *builder) line(offset int) int {
	return sort.SearchInts(b.lineStarts, offset+1) - 1
}

// sourceMap spans every line segment found in n and its block descendants.
func (b *builder) sourceMap(n ast.Node) *token.SourceMap {
	start, stop := -1, -1
	var visit func(ast.Node)
	visit = func(n ast.Node) {
		if n.Type() != ast.TypeBlock {
			return
		}
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if start < 0 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c)
		}
	}
	visit(n)
	if start < 0 {
		return nil
	}
	end := stop
	if end > start {
		end--
	}
	return &token.SourceMap{Start: b.line(start), End: b.line(end) + 1}
}

func (b *builder) children(n ast.Node, tight bool) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.block(c, tight)
	}
}

func (b *builder) block(n ast.Node, tight bool) {
	switch n := n.(type) {
	case *ast.Document:
		b.children(n, false)
	case *ast.Paragraph:
		b.paragraph(n, false)
	case *ast.TextBlock:
		b.paragraph(n, tight)
	case *ast.Heading:
		tag := "h" + strconv.Itoa(n.Level)
		open := b.push("heading_open", tag, token.Opening)
		open.Map = b.sourceMap(n)
		open.Markup = strings.Repeat("#", n.Level)
		b.inline(n, open.Map)
		b.push("heading_close", tag, token.Closing).Markup = open.Markup
	case *ast.ThematicBreak:
		hr := b.push("hr", "hr", token.SelfClosing)
		hr.Map = b.sourceMap(n)
	case *ast.Blockquote:
		open := b.push("blockquote_open", "blockquote", token.Opening)
		open.Map = b.sourceMap(n)
		open.Markup = ">"
		b.children(n, false)
		b.push("blockquote_close", "blockquote", token.Closing).Markup = ">"
	case *ast.List:
		typ, tag := "bullet_list", "ul"
		if n.IsOrdered() {
			typ, tag = "ordered_list", "ol"
		}
		open := b.push(typ+"_open", tag, token.Opening)
		open.Map = b.sourceMap(n)
		open.Markup = string(n.Marker)
		if n.IsOrdered() && n.Start != 1 {
			open.AttrSet("start", strconv.Itoa(n.Start))
		}
		b.children(n, n.IsTight)
		b.push(typ+"_close", tag, token.Closing).Markup = open.Markup
	case *ast.ListItem:
		open := b.push("list_item_open", "li", token.Opening)
		open.Map = b.sourceMap(n)
		if list, ok := n.Parent().(*ast.List); ok {
			open.Markup = string(list.Marker)
		}
		b.children(n, tight)
		b.push("list_item_close", "li", token.Closing).Markup = open.Markup
	case *ast.FencedCodeBlock:
		fence := b.push("fence", "code", token.SelfClosing)
		fence.Map = b.sourceMap(n)
		fence.Markup = "```"
		fence.Content = b.lines(n)
		if n.Info != nil {
			fence.Info = string(n.Info.Segment.Value(b.src))
		}
	case *ast.CodeBlock:
		code := b.push("code_block", "code", token.SelfClosing)
		code.Map = b.sourceMap(n)
		code.Content = b.lines(n)
	case *ast.HTMLBlock:
		html := b.push("html_block", "", token.SelfClosing)
		html.Map = b.sourceMap(n)
		html.Content = b.lines(n)
		if n.HasClosure() {
			html.Content += string(n.ClosureLine.Value(b.src))
		}
	default:
		b.children(n, tight)
	}
}

func (b *builder) paragraph(n ast.Node, hidden bool) {
	open := b.push("paragraph_open", "p", token.Opening)
	open.Map = b.sourceMap(n)
	open.Hidden = hidden
	b.inline(n, open.Map)
	b.push("paragraph_close", "p", token.Closing).Hidden = hidden
}

func (b *builder) inline(n ast.Node, m *token.SourceMap) {
	tok := b.push("inline", "", token.SelfClosing)
	tok.Block = false
	tok.Content = strings.TrimSpace(b.lines(n))
	if m != nil {
		cp := *m
		tok.Map = &cp
	}
	b.inlines[tok] = n
}

func (b *builder) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(b.src))
	}
	return buf.String()
}

type inlineBuilder struct {
	src    []byte
	level  int
	tokens []*token.Token
	// joinable is set while the last token is a text run that may grow.
	joinable bool
}

func (ib *inlineBuilder) push(typ, tag string, nesting token.Nesting) *token.Token {
	tok := token.New(typ, tag, nesting)
	if nesting == token.Closing {
		ib.level--
	}
	tok.Level = ib.level
	if nesting == token.Opening {
		ib.level++
	}
	ib.tokens = append(ib.tokens, tok)
	ib.joinable = false
	return tok
}

func (ib *inlineBuilder) text(s string) {
	if s == "" {
		return
	}
	if ib.joinable {
		ib.tokens[len(ib.tokens)-1].Content += s
		return
	}
	ib.push("text", "", token.SelfClosing).Content = s
	ib.joinable = true
}

func (ib *inlineBuilder) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		ib.node(c)
	}
}

func (ib *inlineBuilder) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		ib.text(unescape(n.Segment.Value(ib.src)))
		switch {
		case n.HardLineBreak():
			ib.push("hardbreak", "br", token.SelfClosing)
		case n.SoftLineBreak():
			ib.push("softbreak", "br", token.SelfClosing)
		}
	case *ast.String:
		if n.IsCode() || n.IsRaw() {
			ib.text(string(n.Value))
		} else {
			ib.text(unescape(n.Value))
		}
	case *ast.CodeSpan:
		var buf bytes.Buffer
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.Text:
				buf.Write(c.Segment.Value(ib.src))
			case *ast.String:
				buf.Write(c.Value)
			}
		}
		code := ib.push("code_inline", "code", token.SelfClosing)
		code.Content = buf.String()
		code.Markup = "`"
	case *ast.Emphasis:
		typ, tag, markup := "em", "em", "*"
		if n.Level == 2 {
			typ, tag, markup = "strong", "strong", "**"
		}
		ib.push(typ+"_open", tag, token.Opening).Markup = markup
		ib.children(n)
		ib.push(typ+"_close", tag, token.Closing).Markup = markup
	case *ast.Link:
		open := ib.push("link_open", "a", token.Opening)
		open.AttrSet("href", string(n.Destination))
		if len(n.Title) > 0 {
			open.AttrSet("title", string(n.Title))
		}
		ib.children(n)
		ib.push("link_close", "a", token.Closing)
	case *ast.AutoLink:
		open := ib.push("link_open", "a", token.Opening)
		open.AttrSet("href", string(n.URL(ib.src)))
		open.Markup = "autolink"
		ib.text(string(n.Label(ib.src)))
		ib.push("link_close", "a", token.Closing).Markup = "autolink"
	case *ast.Image:
		alt := &inlineBuilder{src: ib.src}
		alt.children(n)
		img := ib.push("image", "img", token.SelfClosing)
		img.Content = plainText(alt.tokens)
		img.AttrSet("src", string(n.Destination))
		img.AttrSet("alt", img.Content)
		if len(n.Title) > 0 {
			img.AttrSet("title", string(n.Title))
		}
	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(ib.src))
		}
		ib.push("html_inline", "", token.SelfClosing).Content = buf.String()
	default:
		ib.children(n)
	}
}

func unescape(b []byte) string {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}

func plainText(tokens []*token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.Type {
		case "text", "code_inline":
			sb.WriteString(t.Content)
		case "softbreak", "hardbreak":
			sb.WriteByte('\n')
		case "image":
			sb.WriteString(t.Content)
		}
	}
	return sb.String()
}
