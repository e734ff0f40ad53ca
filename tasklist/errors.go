/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tasklist

import "errors"

// Sentinel errors for task list operations.
var (
	// ErrAlreadyInstalled indicates the transform is already registered on a host.
	ErrAlreadyInstalled = errors.New("task lists already installed")

	// ErrUnknownFallback indicates an unrecognized id fallback strategy.
	ErrUnknownFallback = errors.New("unknown id fallback")
)
