/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/mdtasks/internal/mapfs"
	"bennypowers.dev/mdtasks/load"
	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/tasklist"
)

func entries() []Entry {
	return []Entry{
		{File: "a.md", Item: tasklist.Item{ID: "task-item-0", Checked: false, Line: 0, Text: "Buy milk"}},
		{File: "a.md", Item: tasklist.Item{ID: "task-item-1", Checked: true, Line: 1, Text: "Walk the DOG"}},
		{File: "b.md", Item: tasklist.Item{ID: "task-item-4", Checked: true, Line: 4, Text: "Plan für den SOMMER"}},
	}
}

func TestFilterEntries(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		if got := FilterEntries(entries(), Filter{}); len(got) != 3 {
			t.Errorf("expected 3 entries, got %d", len(got))
		}
	})

	t.Run("checked only", func(t *testing.T) {
		got := FilterEntries(entries(), Filter{Checked: true})
		if len(got) != 2 {
			t.Fatalf("expected 2 checked entries, got %d", len(got))
		}
		for _, e := range got {
			if !e.Checked {
				t.Errorf("unexpected unchecked entry %s", e.ID)
			}
		}
	})

	t.Run("unchecked only", func(t *testing.T) {
		got := FilterEntries(entries(), Filter{Unchecked: true})
		if len(got) != 1 || got[0].ID != "task-item-0" {
			t.Errorf("unexpected entries: %+v", got)
		}
	})

	t.Run("search ignores case", func(t *testing.T) {
		got := FilterEntries(entries(), Filter{Search: "dog"})
		if len(got) != 1 || got[0].ID != "task-item-1" {
			t.Errorf("unexpected entries: %+v", got)
		}
	})

	t.Run("search folds unicode", func(t *testing.T) {
		got := FilterEntries(entries(), Filter{Search: "FÜR den sommer"})
		if len(got) != 1 || got[0].File != "b.md" {
			t.Errorf("unexpected entries: %+v", got)
		}
	})
}

func TestStatus(t *testing.T) {
	if Status(true) != "Done" {
		t.Errorf("Status(true) = %q", Status(true))
	}
	if Status(false) != "Open" {
		t.Errorf("Status(false) = %q", Status(false))
	}
}

func TestCollect(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/a.md", "- [ ] one\n- [x] two\n", 0644)
	mfs.AddFile("/p/b.md", "no tasks here\n", 0644)

	p := markdown.New()
	if err := tasklist.Install(p, tasklist.DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	got := Collect(context.Background(), load.Options{FS: mfs}, p, []string{"/p/a.md", "/p/b.md", "/p/missing.md"})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].File != "/p/a.md" || got[0].Text != "one" || got[0].Checked {
		t.Errorf("unexpected first entry: %+v", got[0])
	}
	if got[1].ID != "task-item-1" || !got[1].Checked {
		t.Errorf("unexpected second entry: %+v", got[1])
	}
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	if err := outputTable(&buf, entries()[:1], 0); err != nil {
		t.Fatal(err)
	}
	line := buf.String()
	for _, want := range []string{"Open", "a.md:1", "task-item-0", "Buy milk"} {
		if !strings.Contains(line, want) {
			t.Errorf("table row %q missing %q", line, want)
		}
	}
}

func TestOutputJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	var decoded []Entry
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Errorf("expected empty array, got %s", buf.String())
	}
}

func TestOutputTable_Truncates(t *testing.T) {
	long := Entry{File: "a.md", Item: tasklist.Item{ID: "task-item-0", Line: 0, Text: strings.Repeat("word ", 40)}}

	var buf bytes.Buffer
	if err := outputTable(&buf, []Entry{long}, 80); err != nil {
		t.Fatal(err)
	}
	row := strings.TrimSuffix(buf.String(), "\n")
	if n := len([]rune(row)); n > 80 {
		t.Errorf("row is %d runes wide, want at most 80: %q", n, row)
	}
	if !strings.HasSuffix(row, "…") {
		t.Errorf("truncated row should end with an ellipsis: %q", row)
	}
}
