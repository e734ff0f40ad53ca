/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"fmt"
	"strings"
)

// DefaultIDPrefix prefixes every allocated checkbox id.
const DefaultIDPrefix = "task-item-"

// Fallback selects how ids are built for tokens without a source map.
type Fallback int

const (
	// FallbackCounter numbers items in document order.
	FallbackCounter Fallback = iota
	// FallbackHash derives the id from the item's text.
	FallbackHash
)

// String returns the configuration name of the strategy.
func (f Fallback) String() string {
	switch f {
	case FallbackHash:
		return "hash"
	default:
		return "counter"
	}
}

// ParseFallback parses "counter" or "hash". The empty string selects the counter.
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "counter":
		return FallbackCounter, nil
	case "hash":
		return FallbackHash, nil
	default:
		return FallbackCounter, fmt.Errorf("%w: %q", ErrUnknownFallback, s)
	}
}

// Options configures the transform and its render rules.
type Options struct {
	// Enabled makes checkboxes interactive. When false they render disabled
	// and the list item omits the "enabled" class.
	Enabled bool

	// Label wraps the item text in a <label> bound to the checkbox.
	Label bool

	// LineNumber emits data-line on checkboxes with a source line.
	LineNumber bool

	// IDPrefix prefixes allocated ids. Empty means DefaultIDPrefix.
	IDPrefix string

	// Fallback picks the id scheme for items without a source map.
	Fallback Fallback
}

// DefaultOptions returns interactive, labelled checkboxes without line numbers.
func DefaultOptions() Options {
	return Options{
		Enabled:  true,
		Label:    true,
		IDPrefix: DefaultIDPrefix,
	}
}

func (o Options) prefix() string {
	if o.IDPrefix == "" {
		return DefaultIDPrefix
	}
	return o.IDPrefix
}
