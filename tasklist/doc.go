/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tasklist rewrites GitHub-style task list items in a markdown token
// stream.
//
// A task item is a list item whose first paragraph starts with "[ ] " or
// "[x] ". The transform inserts a checkbox token (and optionally a label
// wrapping the item text), strips the marker, and tags the list item and
// its enclosing list with CSS classes:
//
//	p := markdown.New()
//	if err := tasklist.Install(p, tasklist.DefaultOptions()); err != nil {
//		return err
//	}
//	html, err := p.Render([]byte("- [x] buy milk\n"), nil)
//
// A Transformer is immutable once built and may be shared between
// goroutines rendering different documents.
package tasklist
