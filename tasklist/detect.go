/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import "bennypowers.dev/mdtasks/token"

// IsTaskItem reports whether tokens[i] is the inline token of a task item:
// list_item_open, paragraph_open, inline, with the inline content starting
// with a marker.
func IsTaskItem(tokens []*token.Token, i int) bool {
	if i < 2 || i >= len(tokens) {
		return false
	}
	if tokens[i].Type != "inline" ||
		tokens[i-1].Type != "paragraph_open" ||
		tokens[i-2].Type != "list_item_open" {
		return false
	}
	_, ok := ParseMarker(tokens[i].Content)
	return ok
}
