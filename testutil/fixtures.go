/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden file helpers for tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bennypowers.dev/mdtasks/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// candidates lists where a testdata-relative path may live, since go test
// runs each package from its own directory.
func candidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

func find(rel string) string {
	for _, p := range candidates(rel) {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// NewFixtureFS loads a testdata fixture directory into a MapFileSystem
// rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath := find(fixtureDir)
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	require.NoError(t, err, "loading fixtures from %s", fixtureDir)

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	p := find(fixturePath)
	if p == "" {
		t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	}
	content, err := os.ReadFile(p)
	require.NoError(t, err)
	return content
}

// Golden compares actual with the named golden file, rewriting it first
// when -update is set.
func Golden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if *updateGolden {
		target := find(goldenPath)
		if target == "" {
			target = candidates(goldenPath)[0]
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, os.WriteFile(target, actual, 0644))
		t.Logf("Updated golden file: %s", target)
	}
	expected := LoadFixtureFile(t, goldenPath)
	require.Equal(t, string(expected), string(actual), "output differs from %s", goldenPath)
}
