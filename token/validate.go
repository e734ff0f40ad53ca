/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// Validate checks that block levels follow cumulative nesting and that every
// opening token is closed by a token of the same level.
func Validate(tokens []*Token) error {
	var open []*Token
	level := 0
	for i, tok := range tokens {
		if tok.Nesting == Closing {
			level--
		}
		if tok.Level != level {
			return fmt.Errorf("%w: token %d (%s) has level %d, want %d", ErrUnbalanced, i, tok.Type, tok.Level, level)
		}
		switch tok.Nesting {
		case Opening:
			open = append(open, tok)
			level++
		case Closing:
			if len(open) == 0 {
				return fmt.Errorf("%w: token %d (%s) closes nothing", ErrUnbalanced, i, tok.Type)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		last := open[len(open)-1]
		return fmt.Errorf("%w: %s at level %d is never closed", ErrUnbalanced, last.Type, last.Level)
	}
	return nil
}
