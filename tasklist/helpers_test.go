/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist_test

import (
	"bennypowers.dev/mdtasks/token"
)

// listItem builds list_item_open, paragraph_open, inline, paragraph_close,
// list_item_close at the given list level. line < 0 leaves the map unset.
func listItem(level int, content string, line int) []*token.Token {
	var m *token.SourceMap
	if line >= 0 {
		m = &token.SourceMap{Start: line, End: line + 1}
	}
	mapCopy := func() *token.SourceMap {
		if m == nil {
			return nil
		}
		cp := *m
		return &cp
	}

	li := token.New("list_item_open", "li", token.Opening)
	li.Level, li.Block, li.Map = level, true, mapCopy()
	p := token.New("paragraph_open", "p", token.Opening)
	p.Level, p.Block, p.Hidden, p.Map = level+1, true, true, mapCopy()
	inline := token.New("inline", "", token.SelfClosing)
	inline.Level, inline.Content, inline.Map = level+2, content, mapCopy()
	text := token.New("text", "", token.SelfClosing)
	text.Content = content
	inline.Children = []*token.Token{text}
	pc := token.New("paragraph_close", "p", token.Closing)
	pc.Level, pc.Block, pc.Hidden = level+1, true, true
	lic := token.New("list_item_close", "li", token.Closing)
	lic.Level, lic.Block = level, true

	return []*token.Token{li, p, inline, pc, lic}
}

// bulletList wraps items in bullet_list_open/close at level 0.
func bulletList(items ...[]*token.Token) []*token.Token {
	open := token.New("bullet_list_open", "ul", token.Opening)
	open.Block = true
	tokens := []*token.Token{open}
	for _, it := range items {
		tokens = append(tokens, it...)
	}
	closing := token.New("bullet_list_close", "ul", token.Closing)
	closing.Block = true
	return append(tokens, closing)
}

// inlineAt returns the inline token of the n-th list item in a bulletList.
func inlineAt(tokens []*token.Token, n int) *token.Token {
	seen := 0
	for _, tok := range tokens {
		if tok.Type == "inline" {
			if seen == n {
				return tok
			}
			seen++
		}
	}
	return nil
}

func childTypes(tok *token.Token) []string {
	types := make([]string, 0, len(tok.Children))
	for _, c := range tok.Children {
		types = append(types, c.Type)
	}
	return types
}
