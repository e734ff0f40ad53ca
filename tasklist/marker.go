/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

// Marker is a parsed "[ ] " or "[x] " prefix.
type Marker struct {
	// Checked is true for "[x]" and "[X]".
	Checked bool

	// Len is the byte length of the marker including leading spaces and
	// the trailing space.
	Len int
}

// ParseMarker recognizes a task marker at the start of s:
// optional spaces, '[', one of ' ', 'x', 'X', ']', then exactly one space.
func ParseMarker(s string) (Marker, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if len(s)-i < 4 {
		return Marker{}, false
	}
	if s[i] != '[' || s[i+2] != ']' || s[i+3] != ' ' {
		return Marker{}, false
	}
	switch s[i+1] {
	case ' ':
		return Marker{Checked: false, Len: i + 4}, true
	case 'x', 'X':
		return Marker{Checked: true, Len: i + 4}, true
	default:
		return Marker{}, false
	}
}

// StripMarker removes a leading marker from s once. Text without a marker
// is returned unchanged.
func StripMarker(s string) string {
	m, ok := ParseMarker(s)
	if !ok {
		return s
	}
	return s[m.Len:]
}
