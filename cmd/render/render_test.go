/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/mdtasks/internal/mapfs"
	"bennypowers.dev/mdtasks/load"
	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/tasklist"
	"bennypowers.dev/mdtasks/testutil"
)

func newPipeline(t *testing.T) *markdown.Pipeline {
	t.Helper()
	p := markdown.New()
	require.NoError(t, tasklist.Install(p, tasklist.DefaultOptions()))
	return p
}

func TestTitle(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"my-todo.md", "My Todo"},
		{"/docs/release_notes.markdown", "Release Notes"},
		{"TODO.md", "Todo"},
		{"a--b.md", "A B"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.path))
		})
	}
}

func TestOutputNames(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected []string
	}{
		{
			name:     "single file",
			inputs:   []string{"/project/docs/todo.md"},
			expected: []string{filepath.Join("out", "todo.html")},
		},
		{
			name:   "same base name in sibling dirs",
			inputs: []string{"/project/docs/a/todo.md", "/project/docs/b/todo.md"},
			expected: []string{
				filepath.Join("out", "a", "todo.html"),
				filepath.Join("out", "b", "todo.html"),
			},
		},
		{
			name:   "nested under a shared root",
			inputs: []string{"/project/docs/guide.md", "/project/docs/nested/deep.md"},
			expected: []string{
				filepath.Join("out", "guide.html"),
				filepath.Join("out", "nested", "deep.html"),
			},
		},
		{
			name:     "url",
			inputs:   []string{"https://example.com/notes/TODO.md"},
			expected: []string{filepath.Join("out", "TODO.html")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputNames("out", tt.inputs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOutputNames_Collision(t *testing.T) {
	_, err := OutputNames("out", []string{"https://a.example/TODO.md", "https://b.example/TODO.md"})
	assert.ErrorIs(t, err, ErrOutputCollision)
}

func TestWriteOutputs_CreatesDirectories(t *testing.T) {
	mfs := mapfs.New()
	docs := []Rendered{
		{Path: "/project/docs/a/todo.md", HTML: "<p>a</p>\n"},
		{Path: "/project/docs/b/todo.md", HTML: "<p>b</p>\n"},
	}

	written, err := WriteOutputs(mfs, "/site/out", docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"/site/out/a/todo.html", "/site/out/b/todo.html"}, written)

	a, err := mfs.ReadFile("/site/out/a/todo.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>\n", string(a))
	b, err := mfs.ReadFile("/site/out/b/todo.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>b</p>\n", string(b))
}

func TestRenderFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/render", "/project")
	files := []string{"/project/todo.md", "/project/missing.md", "/project/notes.md"}

	docs := RenderFiles(context.Background(), load.Options{FS: mfs}, newPipeline(t), files)

	require.Len(t, docs, 2, "unreadable inputs are skipped")
	assert.Equal(t, "/project/todo.md", docs[0].Path)
	assert.Contains(t, docs[0].HTML, `<ul class="contains-task-list">`)
	assert.Equal(t, "<p>Plain notes.</p>\n", docs[1].HTML)
}

func TestStandaloneGolden(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/render", "/project")

	docs := RenderFiles(context.Background(), load.Options{FS: mfs}, newPipeline(t), []string{"/project/todo.md"})
	require.Len(t, docs, 1)

	testutil.Golden(t, "golden/render/todo.html", []byte(Standalone(docs[0].Path, docs[0].HTML)))
}

func TestStandalone_EscapesTitle(t *testing.T) {
	html := Standalone("x<y>.md", "")
	assert.NotContains(t, html, "<y>")
	assert.Contains(t, html, "&lt;")
}
