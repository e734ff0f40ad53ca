/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token operations.
var (
	// ErrInvalidAttr indicates a serialized attribute is not a name/value pair.
	ErrInvalidAttr = errors.New("invalid attribute")

	// ErrUnbalanced indicates an opening token has no matching closing token.
	ErrUnbalanced = errors.New("unbalanced token stream")
)
