/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markdown

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrRuleNotFound indicates a core rule anchor does not exist.
	ErrRuleNotFound = errors.New("core rule not found")

	// ErrDuplicateRule indicates a core rule name is already registered.
	ErrDuplicateRule = errors.New("core rule already registered")
)
