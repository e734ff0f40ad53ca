/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestWriteFile_NeedsParent(t *testing.T) {
	m := New()

	err := m.WriteFile("/out/a.html", []byte("x"), 0644)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	if err := m.MkdirAll("/out", 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := m.WriteFile("/out/a.html", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !m.Exists("/out") {
		t.Error("created directory should exist")
	}
	if got := m.Files(); len(got) != 1 || got[0] != "/out/a.html" {
		t.Errorf("Files() = %v, want only the written file", got)
	}
}

func TestMkdirAll_FileInTheWay(t *testing.T) {
	m := New()
	m.AddFile("/out", "not a dir", 0644)

	if err := m.MkdirAll("/out/sub", 0755); err == nil {
		t.Fatal("expected error when a file occupies the path")
	}
}
