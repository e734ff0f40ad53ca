/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger shared by the CLI and the
// task list transform. Debug output is off unless verbose mode is enabled.
package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	// Default logs to stderr. Set to io.Discard for silent mode.
	output  io.Writer = os.Stderr
	logger  atomic.Pointer[log.Logger]
	verbose atomic.Bool
)

func init() {
	logger.Store(log.New(output, "", 0))
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger.Store(log.New(output, "", 0))
}

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Load().Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Load().Printf(format, args...)
}

// Debug logs a debug message when verbose mode is on.
func Debug(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	logger.Load().Printf("debug: "+format, args...)
}
