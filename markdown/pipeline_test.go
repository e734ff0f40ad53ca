/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markdown_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/token"
)

func TestPipeline_RuleOrder(t *testing.T) {
	p := markdown.New()
	noop := func(*markdown.State) error { return nil }

	require.NoError(t, p.AddCoreRuleAfter(markdown.RuleInline, "after-inline", noop))
	require.NoError(t, p.AddCoreRuleBefore(markdown.RuleInline, "before-inline", noop))
	require.NoError(t, p.PushCoreRule("last", noop))

	assert.Equal(t, []string{"block", "before-inline", "inline", "after-inline", "last"}, p.RuleNames())
	assert.True(t, p.HasCoreRule("last"))
	assert.False(t, p.HasCoreRule("missing"))
}

func TestPipeline_RuleErrors(t *testing.T) {
	p := markdown.New()
	noop := func(*markdown.State) error { return nil }

	err := p.AddCoreRuleAfter("missing", "x", noop)
	assert.ErrorIs(t, err, markdown.ErrRuleNotFound)

	require.NoError(t, p.PushCoreRule("x", noop))
	assert.ErrorIs(t, p.PushCoreRule("x", noop), markdown.ErrDuplicateRule)
	assert.ErrorIs(t, p.AddCoreRuleBefore(markdown.RuleBlock, "x", noop), markdown.ErrDuplicateRule)
}

func TestPipeline_RulesSeeInlineChildren(t *testing.T) {
	p := markdown.New()
	var before, after int
	count := func(n *int) markdown.CoreRule {
		return func(s *markdown.State) error {
			for _, tok := range s.Tokens {
				*n += len(tok.Children)
			}
			return nil
		}
	}
	require.NoError(t, p.AddCoreRuleBefore(markdown.RuleInline, "before", count(&before)))
	require.NoError(t, p.AddCoreRuleAfter(markdown.RuleInline, "after", count(&after)))

	_, err := p.Parse([]byte("hello *world*\n"), nil)
	require.NoError(t, err)
	assert.Zero(t, before)
	assert.Equal(t, 4, after)
}

func TestPipeline_RuleErrorStopsParse(t *testing.T) {
	p := markdown.New()
	boom := errors.New("boom")
	require.NoError(t, p.PushCoreRule("fail", func(*markdown.State) error { return boom }))

	_, err := p.Parse([]byte("text"), nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "core rule fail")
}

func TestPipeline_Env(t *testing.T) {
	p := markdown.New()
	require.NoError(t, p.PushCoreRule("mark", func(s *markdown.State) error {
		s.Env["seen"] = len(s.Tokens)
		return nil
	}))

	env := map[string]any{}
	toks, err := p.Parse([]byte("para\n"), env)
	require.NoError(t, err)
	assert.Equal(t, len(toks), env["seen"])
}

func TestPipeline_SetRenderRule(t *testing.T) {
	p := markdown.New()
	p.SetRenderRule("text", func(tokens []*token.Token, idx int, _ *markdown.Renderer) string {
		return "[" + tokens[idx].Content + "]"
	})

	html, err := p.Render([]byte("hi\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>[hi]</p>\n", html)
}

func TestPipeline_BuiltinStagesMatchParser(t *testing.T) {
	src := []byte("# Todo\n\n- [ ] *one*\n- [x] two\n\n> quote\n")

	fromPipeline, err := markdown.New().Parse(src, nil)
	require.NoError(t, err)
	fromParser := markdown.NewParser().Parse(src)

	require.Len(t, fromPipeline, len(fromParser))
	for i := range fromParser {
		assert.Equal(t, fromParser[i].Type, fromPipeline[i].Type)
		assert.Equal(t, fromParser[i].Content, fromPipeline[i].Content)
		assert.Equal(t, len(fromParser[i].Children), len(fromPipeline[i].Children))
	}
}
