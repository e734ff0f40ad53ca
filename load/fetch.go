/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"bennypowers.dev/mdtasks/internal/version"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed document size (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

var (
	// ErrUnexpectedStatus is returned for any response other than 200 OK.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrTooLarge is returned when a document exceeds the fetcher's limit.
	ErrTooLarge = errors.New("document too large")

	// ErrUnsupportedContentType is returned when a server answers with
	// something other than markdown or plain text, usually an HTML page
	// in place of the raw file.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// markdownTypes are the media types accepted as markdown. Servers that
// send no type or a generic binary type are given the benefit of the doubt.
var markdownTypes = map[string]bool{
	"text/markdown":            true,
	"text/x-markdown":          true,
	"text/plain":               true,
	"application/octet-stream": true,
}

// Fetcher fetches a markdown document from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches raw markdown over HTTP. It rejects error statuses,
// non-markdown content types, and bodies larger than its size limit.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher that accepts documents of at most
// maxSize bytes.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{},
	}
}

// Fetch downloads the markdown document at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "mdtasks/"+version.Get())
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := f.check(resp); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(content)) > f.maxSize {
		return nil, fmt.Errorf("fetching %s: %w: over %d bytes", url, ErrTooLarge, f.maxSize)
	}
	return content, nil
}

// check inspects response headers before the body is read.
func (f *HTTPFetcher) check(resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	if err := checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return err
	}
	if resp.ContentLength > f.maxSize {
		return fmt.Errorf("%w: Content-Length %d over %d bytes", ErrTooLarge, resp.ContentLength, f.maxSize)
	}
	return nil
}

func checkContentType(header string) error {
	if header == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedContentType, header, err)
	}
	if !markdownTypes[mediaType] {
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
	return nil
}
