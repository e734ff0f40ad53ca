/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

var (
	// ErrUnsupportedFormat indicates a config file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidConfig indicates a config that does not match the schema.
	ErrInvalidConfig = errors.New("invalid config")
)
