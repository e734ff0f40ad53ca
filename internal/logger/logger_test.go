/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"os"
	"testing"
)

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug output without verbose: %q", buf.String())
	}

	SetVerbose(true)
	Debug("shown %d", 2)
	if got := buf.String(); got != "debug: shown 2\n" {
		t.Errorf("Debug() wrote %q", got)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Warn("error reading %s", "a.md")
	if got := buf.String(); got != "warning: error reading a.md\n" {
		t.Errorf("Warn() wrote %q", got)
	}
}
