/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem on top of fstest.MapFS.
// Absolute and relative paths address the same files.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:   make(fstest.MapFS),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: m.modTime,
	}
}

// WriteFile implements fs.FileSystem.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	if dir := path.Dir(name); dir != "." {
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
		}
		if !m.dirExists(dir) {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
	}
	m.files[name] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: m.modTime,
	}
	return nil
}

// MkdirAll implements fs.FileSystem.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var dirs []string
	for dir := clean(p); dir != "."; dir = path.Dir(dir) {
		dirs = append(dirs, dir)
	}
	for i := len(dirs) - 1; i >= 0; i-- {
		dir := dirs[i]
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: dir, Err: fs.ErrExist}
		}
	}
	for _, dir := range dirs {
		if !m.dirExists(dir) {
			m.files[dir] = &fstest.MapFile{Mode: fs.ModeDir | perm, ModTime: m.modTime}
		}
	}
	return nil
}

// ReadFile implements fs.FileSystem.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

// Stat implements fs.FileSystem.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists reports whether p is a file or a directory.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	return m.dirExists(p)
}

// dirExists reports whether dir was created or holds entries. Callers hold
// the lock.
func (m *MapFileSystem) dirExists(dir string) bool {
	if dir == "." {
		return true
	}
	if f, ok := m.files[dir]; ok {
		return f.Mode.IsDir()
	}
	prefix := dir + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Open implements fs.FileSystem.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

// Files returns the sorted paths of all files, rooted at "/".
func (m *MapFileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.files))
	for name, f := range m.files {
		if f.Mode.IsDir() {
			continue
		}
		names = append(names, "/"+name)
	}
	sort.Strings(names)
	return names
}

func clean(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
