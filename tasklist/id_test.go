/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"strings"
	"testing"

	"bennypowers.dev/mdtasks/token"
)

func inlineToken(content string, m *token.SourceMap) *token.Token {
	tok := token.New("inline", "", token.SelfClosing)
	tok.Content = content
	tok.Map = m
	return tok
}

func TestIDAllocator_SourceLine(t *testing.T) {
	ids := NewIDAllocator(DefaultOptions())
	tok := inlineToken("[ ] a", &token.SourceMap{Start: 42, End: 42})

	for range 3 {
		if got := ids.Allocate(tok); got != "task-item-42" {
			t.Errorf("Allocate() = %q, want %q", got, "task-item-42")
		}
	}

	other := inlineToken("[ ] b", &token.SourceMap{Start: 42, End: 43})
	if got := ids.Allocate(other); got != "task-item-42" {
		t.Errorf("same start line should share the id, got %q", got)
	}
}

func TestIDAllocator_Prefix(t *testing.T) {
	ids := NewIDAllocator(Options{IDPrefix: "todo-"})
	if got := ids.Allocate(inlineToken("", &token.SourceMap{Start: 7, End: 8})); got != "todo-7" {
		t.Errorf("Allocate() = %q, want %q", got, "todo-7")
	}
	if got := NewIDAllocator(Options{}).Allocate(inlineToken("", &token.SourceMap{})); got != "task-item-0" {
		t.Errorf("empty prefix should fall back to the default, got %q", got)
	}
}

func TestIDAllocator_Counter(t *testing.T) {
	ids := NewIDAllocator(DefaultOptions())
	want := []string{"task-item-auto-1", "task-item-auto-2", "task-item-auto-3"}
	for i, w := range want {
		if got := ids.Allocate(inlineToken("[ ] same", nil)); got != w {
			t.Errorf("allocation %d = %q, want %q", i, got, w)
		}
	}
}

func TestIDAllocator_Hash(t *testing.T) {
	opts := DefaultOptions()
	opts.Fallback = FallbackHash

	first := NewIDAllocator(opts)
	a := first.Allocate(inlineToken("[ ] buy milk", nil))
	b := first.Allocate(inlineToken("[ ] walk dog", nil))
	dup := first.Allocate(inlineToken("[ ] buy milk", nil))

	if !strings.HasPrefix(a, DefaultIDPrefix) || len(a) != len(DefaultIDPrefix)+8 {
		t.Errorf("hash id %q should be the prefix plus 8 hex digits", a)
	}
	if a == b {
		t.Errorf("different content produced the same id %q", a)
	}
	if dup != a+"-2" {
		t.Errorf("repeated content = %q, want %q", dup, a+"-2")
	}

	second := NewIDAllocator(opts)
	if again := second.Allocate(inlineToken("[ ] buy milk", nil)); again != a {
		t.Errorf("hash ids should be stable across documents: %q != %q", again, a)
	}
}

func TestParseFallback(t *testing.T) {
	tests := []struct {
		input    string
		expected Fallback
		wantErr  bool
	}{
		{"", FallbackCounter, false},
		{"counter", FallbackCounter, false},
		{"HASH", FallbackHash, false},
		{" hash ", FallbackHash, false},
		{"random", FallbackCounter, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFallback(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFallback(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFallback(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
