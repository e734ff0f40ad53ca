/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import "bennypowers.dev/mdtasks/token"

// CSS classes added by the transform.
const (
	ClassItem     = "task-list-item"
	ClassEnabled  = "enabled"
	ClassContains = "contains-task-list"
)

// TagClasses marks the list item owning the inline token at i and its
// enclosing container.
func TagClasses(tokens []*token.Token, i int, opts Options) {
	item := tokens[i-2]
	if !item.Attrs.HasClass(ClassItem) {
		item.AttrJoin("class", ClassItem)
		if opts.Enabled {
			item.AttrJoin("class", ClassEnabled)
		}
	}

	parent := FindParent(tokens, i-2)
	if parent != nil && !parent.Attrs.HasClass(ClassContains) {
		parent.AttrJoin("class", ClassContains)
	}
}

// FindParent returns the nearest token before idx one level shallower than
// tokens[idx], or nil at the top level. The scan is linear in the distance
// to that token.
func FindParent(tokens []*token.Token, idx int) *token.Token {
	target := tokens[idx].Level - 1
	for i := idx - 1; i >= 0; i-- {
		if tokens[i].Level == target {
			return tokens[i]
		}
	}
	return nil
}
