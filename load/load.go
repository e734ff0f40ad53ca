/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads markdown inputs from the filesystem or, when a
// Fetcher is configured, over HTTP.
package load

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bennypowers.dev/mdtasks/fs"
)

// ErrNetworkDisabled indicates a URL input was given without a Fetcher.
var ErrNetworkDisabled = errors.New("network inputs are disabled")

// Options configures how inputs are read.
type Options struct {
	// FS is the filesystem to use. Defaults to the OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher enables http and https inputs. Nil means local files only.
	Fetcher Fetcher

	// FetchTimeout bounds each fetch. Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// IsURL reports whether input names an http or https resource.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Read returns the content of input, which is a file path or a URL.
func Read(ctx context.Context, input string, opts Options) ([]byte, error) {
	if IsURL(input) {
		if opts.Fetcher == nil {
			return nil, fmt.Errorf("%s: %w", input, ErrNetworkDisabled)
		}
		timeout := opts.FetchTimeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		content, err := opts.Fetcher.Fetch(ctx, input)
		if err != nil {
			return nil, err
		}
		return stripBOM(content), nil
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	content, err := filesystem.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}
	return stripBOM(content), nil
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// stripBOM drops a leading UTF-8 byte order mark, which would otherwise
// end up in the first paragraph and hide a marker on the first line.
func stripBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, utf8BOM)
}
