/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markdown

import (
	"testing"

	"bennypowers.dev/mdtasks/token"
)

func TestRender_Markdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "paragraph",
			input:    "a < b & c\n",
			expected: "<p>a &lt; b &amp; c</p>\n",
		},
		{
			name:     "heading",
			input:    "# Title\n",
			expected: "<h1>Title</h1>\n",
		},
		{
			name:     "tight list",
			input:    "- a\n- b\n",
			expected: "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name:     "loose list",
			input:    "- a\n\n- b\n",
			expected: "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n",
		},
		{
			name:     "emphasis",
			input:    "*a* **b**\n",
			expected: "<p><em>a</em> <strong>b</strong></p>\n",
		},
		{
			name:     "fence",
			input:    "```go\nx < 1\n```\n",
			expected: "<pre><code class=\"language-go\">x &lt; 1\n</code></pre>\n",
		},
		{
			name:     "thematic break",
			input:    "---\n",
			expected: "<hr />\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Render([]byte(tt.input), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderAttrs(t *testing.T) {
	tok := token.New("link_open", "a", token.Opening)
	tok.AttrSet("href", `/x?a=1&b="2"`)
	tok.AttrSet("class", "one")
	tok.AttrJoin("class", "two")

	want := ` href="/x?a=1&amp;b=&quot;2&quot;" class="one two"`
	if got := RenderAttrs(tok); got != want {
		t.Errorf("RenderAttrs() = %q, want %q", got, want)
	}
}

func TestRenderToken_Hidden(t *testing.T) {
	tok := token.New("paragraph_open", "p", token.Opening)
	tok.Hidden = true
	if got := NewRenderer().RenderToken([]*token.Token{tok}, 0); got != "" {
		t.Errorf("hidden token rendered as %q", got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{`it's "q"`, "it's &quot;q&quot;"},
		{"a < b & c > d", "a &lt; b &amp; c &gt; d"},
		{"&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRender_QuotesInText(t *testing.T) {
	got, err := New().Render([]byte("it's \"q\"\n"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<p>it's &quot;q&quot;</p>\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
