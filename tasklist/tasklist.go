/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"fmt"
	"strings"

	"bennypowers.dev/mdtasks/internal/logger"
	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/token"
)

// RuleName is the name of the core rule registered by Install.
const RuleName = "task-lists"

// Host is a pipeline the transform can be installed into.
// *markdown.Pipeline implements it.
type Host interface {
	AddCoreRuleAfter(after, name string, fn markdown.CoreRule) error
	HasCoreRule(name string) bool
	SetRenderRule(tokenType string, fn markdown.RenderRule)
}

// Item describes one rewritten task item.
type Item struct {
	// ID is the checkbox id.
	ID string `json:"id"`

	// Checked is the marker state.
	Checked bool `json:"checked"`

	// Line is the 0-based source line, or -1 when unknown.
	Line int `json:"line"`

	// Text is the item's paragraph text without the marker.
	Text string `json:"text"`
}

// Result summarizes one pass over a document.
type Result struct {
	Items []Item `json:"items"`
}

// Transformer is a configured task list transform.
type Transformer struct {
	opts Options
}

// New creates a transformer. Options are copied and never modified.
func New(opts Options) *Transformer {
	return &Transformer{opts: opts}
}

// Process rewrites every task item in tokens in place.
func (t *Transformer) Process(tokens []*token.Token) Result {
	ids := NewIDAllocator(t.opts)
	var result Result

	for i := 2; i < len(tokens); i++ {
		if !IsTaskItem(tokens, i) {
			continue
		}
		inline := tokens[i]
		if rewritten(inline) {
			continue
		}
		m, _ := ParseMarker(inline.Content)
		id := ids.Allocate(inline)
		if !Rewrite(inline, t.opts, id) {
			continue
		}
		TagClasses(tokens, i, t.opts)

		line := -1
		if l, ok := inline.StartLine(); ok {
			line = l
		}
		result.Items = append(result.Items, Item{
			ID:      id,
			Checked: m.Checked,
			Line:    line,
			Text:    StripMarker(inline.Content),
		})
	}

	if len(result.Items) > 0 {
		logger.Debug("tasklist: rewrote %d task items", len(result.Items))
	}
	return result
}

// rewritten reports whether a previous pass already inserted the checkbox.
// The inline content keeps its marker, so this is what makes a second pass
// a no-op.
func rewritten(inline *token.Token) bool {
	return len(inline.Children) > 0 && inline.Children[0].Type == TypeCheckbox
}

// CoreRule returns the transform as a pipeline core rule. The result of the
// last pass is stored in state.Env under RuleName.
func (t *Transformer) CoreRule() markdown.CoreRule {
	return func(state *markdown.State) error {
		result := t.Process(state.Tokens)
		if state.Env != nil {
			state.Env[RuleName] = result
		}
		return nil
	}
}

// Install registers the transform after the host's inline stage and sets
// the checkbox and label render rules.
func (t *Transformer) Install(host Host) error {
	if host.HasCoreRule(RuleName) {
		return ErrAlreadyInstalled
	}
	if err := host.AddCoreRuleAfter(markdown.RuleInline, RuleName, t.CoreRule()); err != nil {
		return fmt.Errorf("failed to install task lists: %w", err)
	}
	for typ, fn := range t.Rules() {
		host.SetRenderRule(typ, fn)
	}
	return nil
}

// Install creates a transformer from opts and installs it into host.
func Install(host Host, opts Options) error {
	return New(opts).Install(host)
}

// ResultFromEnv returns the result stored by the core rule, if any.
func ResultFromEnv(env map[string]any) (Result, bool) {
	r, ok := env[RuleName].(Result)
	return r, ok
}

// Summary formats a result as "done/total".
func (r Result) Summary() string {
	done := 0
	for _, it := range r.Items {
		if it.Checked {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(r.Items))
}

// String lists the items one per line.
func (r Result) String() string {
	var sb strings.Builder
	for _, it := range r.Items {
		mark := " "
		if it.Checked {
			mark = "x"
		}
		fmt.Fprintf(&sb, "[%s] %s\n", mark, it.Text)
	}
	return sb.String()
}
