// Package fs provides file-based article input and output.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	"github.com/fwojciec/newsprint"
)

// Ensure Fetcher implements newsprint.Fetcher at compile time.
var _ newsprint.Fetcher = (*Fetcher)(nil)

// Fetcher reads article HTML from file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new file Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file named by rawURL. I/O errors carry the underlying
// system error text as their message.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*newsprint.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, newsprint.Errorf(newsprint.EINVALID, "invalid file URL: %s", rawURL)
	}
	if u.Scheme != "file" {
		return nil, newsprint.Errorf(newsprint.EINVALID, "not a file URL: %s", rawURL)
	}

	b, err := os.ReadFile(u.Path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			code := newsprint.EINTERNAL
			if errors.Is(err, fs.ErrNotExist) {
				code = newsprint.ENOTFOUND
			}
			return nil, newsprint.Errorf(code, "%s", pathErr.Err.Error())
		}
		return nil, err
	}

	return &newsprint.Response{HTML: string(b), StatusCode: http.StatusOK}, nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
