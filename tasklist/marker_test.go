/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import (
	"testing"
)

func TestParseMarker(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ok      bool
		checked bool
		length  int
	}{
		{"unchecked", "[ ] buy milk", true, false, 4},
		{"checked", "[x] buy milk", true, true, 4},
		{"checked uppercase", "[X] buy milk", true, true, 4},
		{"leading spaces", "   [x] buy milk", true, true, 7},
		{"marker only", "[ ] ", true, false, 4},
		{"missing trailing space", "[x]buy milk", false, false, 0},
		{"no text at all", "[x]", false, false, 0},
		{"empty brackets", "[] buy milk", false, false, 0},
		{"two state characters", "[xx] buy milk", false, false, 0},
		{"other state character", "[-] buy milk", false, false, 0},
		{"tab state character", "[\t] buy milk", false, false, 0},
		{"tab after marker", "[x]\tbuy milk", false, false, 0},
		{"leading tab", "\t[x] buy milk", false, false, 0},
		{"adjacent brackets", "[[ ] buy milk", false, false, 0},
		{"plain text", "buy milk", false, false, 0},
		{"empty", "", false, false, 0},
		{"marker later in text", "buy [x] milk", false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ParseMarker(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseMarker(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if m.Checked != tt.checked {
				t.Errorf("ParseMarker(%q) checked = %v, want %v", tt.input, m.Checked, tt.checked)
			}
			if m.Len != tt.length {
				t.Errorf("ParseMarker(%q) len = %d, want %d", tt.input, m.Len, tt.length)
			}
		})
	}
}

func TestStripMarker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[ ] buy milk", "buy milk"},
		{"[x] buy milk", "buy milk"},
		{"  [X] buy milk", "buy milk"},
		{"[x]  two spaces", " two spaces"},
		{"[ ] [x] nested marker", "[x] nested marker"},
		{"no marker", "no marker"},
		{"[x]no space", "[x]no space"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripMarker(tt.input); got != tt.expected {
				t.Errorf("StripMarker(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
