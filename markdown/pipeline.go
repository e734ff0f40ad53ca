/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package markdown turns markdown source into a flat token stream, runs an
// ordered chain of core rules over it and renders the result to HTML.
package markdown

import (
	"fmt"
	"slices"

	"github.com/yuin/goldmark/ast"

	"bennypowers.dev/mdtasks/token"
)

// Names of the built-in core rules.
const (
	RuleBlock  = "block"
	RuleInline = "inline"
)

// State is the per-document value threaded through the core rules.
type State struct {
	// Src is the markdown source.
	Src []byte

	// Tokens is the document's token stream.
	Tokens []*token.Token

	// Env carries arbitrary per-render data between rules.
	Env map[string]any

	doc     ast.Node
	inlines map[*token.Token]ast.Node
}

// CoreRule transforms the state of one document.
type CoreRule func(state *State) error

type namedRule struct {
	name string
	fn   CoreRule
}

// Pipeline owns a parser, an ordered core rule chain and a renderer.
// Configure it before use; rendering is safe for concurrent documents once
// no more rules are added.
type Pipeline struct {
	parser   *Parser
	renderer *Renderer
	rules    []namedRule
}

// New creates a pipeline with the built-in block and inline stages and the
// default render rules.
func New() *Pipeline {
	p := &Pipeline{
		parser:   NewParser(),
		renderer: NewRenderer(),
	}
	p.rules = []namedRule{
		{name: RuleBlock, fn: stage(p.parser.parseBlocks)},
		{name: RuleInline, fn: stage(p.parser.parseInlines)},
	}
	return p
}

// stage adapts a built-in parsing step, which cannot fail, to a CoreRule.
func stage(fn func(*State)) CoreRule {
	return func(s *State) error {
		fn(s)
		return nil
	}
}

// Renderer returns the pipeline's renderer.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// RuleNames returns core rule names in execution order.
func (p *Pipeline) RuleNames() []string {
	names := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		names = append(names, r.name)
	}
	return names
}

// HasCoreRule reports whether a core rule with the given name exists.
func (p *Pipeline) HasCoreRule(name string) bool {
	return p.ruleIndex(name) >= 0
}

func (p *Pipeline) ruleIndex(name string) int {
	return slices.IndexFunc(p.rules, func(r namedRule) bool {
		return r.name == name
	})
}

// AddCoreRuleAfter inserts a rule right after the named one.
func (p *Pipeline) AddCoreRuleAfter(after, name string, fn CoreRule) error {
	return p.insert(after, name, fn, 1)
}

// AddCoreRuleBefore inserts a rule right before the named one.
func (p *Pipeline) AddCoreRuleBefore(before, name string, fn CoreRule) error {
	return p.insert(before, name, fn, 0)
}

// PushCoreRule appends a rule to the end of the chain.
func (p *Pipeline) PushCoreRule(name string, fn CoreRule) error {
	if p.HasCoreRule(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	p.rules = append(p.rules, namedRule{name: name, fn: fn})
	return nil
}

func (p *Pipeline) insert(anchor, name string, fn CoreRule, offset int) error {
	if p.HasCoreRule(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	i := p.ruleIndex(anchor)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, anchor)
	}
	p.rules = slices.Insert(p.rules, i+offset, namedRule{name: name, fn: fn})
	return nil
}

// SetRenderRule registers a render rule for a token type.
func (p *Pipeline) SetRenderRule(tokenType string, fn RenderRule) {
	p.renderer.SetRule(tokenType, fn)
}

// Parse runs every core rule over src and returns the token stream.
func (p *Pipeline) Parse(src []byte, env map[string]any) ([]*token.Token, error) {
	if env == nil {
		env = make(map[string]any)
	}
	state := &State{Src: src, Env: env}
	for _, r := range p.rules {
		if err := r.fn(state); err != nil {
			return nil, fmt.Errorf("core rule %s: %w", r.name, err)
		}
	}
	return state.Tokens, nil
}

// Render parses src and renders it to HTML.
func (p *Pipeline) Render(src []byte, env map[string]any) (string, error) {
	tokens, err := p.Parse(src, env)
	if err != nil {
		return "", err
	}
	return p.renderer.Render(tokens), nil
}
