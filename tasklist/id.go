/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"bennypowers.dev/mdtasks/token"
)

// IDAllocator hands out checkbox ids for one document.
// Tokens with a source map get prefix+startLine, so two items starting on
// the same line share an id. Other tokens get a fallback id that is unique
// within the document and stable across renders of the same input.
type IDAllocator struct {
	prefix   string
	fallback Fallback
	counter  int
	seen     map[string]int
}

// NewIDAllocator creates an allocator for a single document pass.
func NewIDAllocator(opts Options) *IDAllocator {
	return &IDAllocator{
		prefix:   opts.prefix(),
		fallback: opts.Fallback,
		seen:     make(map[string]int),
	}
}

// Allocate returns the id for an inline token.
func (a *IDAllocator) Allocate(tok *token.Token) string {
	if line, ok := tok.StartLine(); ok {
		return a.prefix + strconv.Itoa(line)
	}
	if a.fallback == FallbackHash {
		return a.hashID(tok.Content)
	}
	a.counter++
	return a.prefix + "auto-" + strconv.Itoa(a.counter)
}

func (a *IDAllocator) hashID(content string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(content))
	id := fmt.Sprintf("%s%08x", a.prefix, h.Sum32())
	a.seen[id]++
	if n := a.seen[id]; n > 1 {
		return id + "-" + strconv.Itoa(n)
	}
	return id
}
