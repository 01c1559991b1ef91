// Package trafilatura reduces news pages to their main content with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/newsprint"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Reducer implements newsprint.Reducer at compile time.
var _ newsprint.Reducer = (*Reducer)(nil)

// Reducer is an alternative to the readability reducer for pages where
// readability keeps too much chrome. Links are kept for the article HTML;
// images are taken from the cleaned original document, not from this
// fragment. Pages too short for the main extractor come back from
// trafilatura's baseline as a single flat paragraph.
type Reducer struct {
	fallback bool
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithoutFallback disables the readability and dom-distiller fallback
// extractors trafilatura compares its own result against.
func WithoutFallback() Option {
	return func(r *Reducer) {
		r.fallback = false
	}
}

// NewReducer creates a new Reducer.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{fallback: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce returns the main content fragment of rawHTML, or "" when nothing
// was extracted.
func (r *Reducer) Reduce(pageURL, rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", newsprint.Errorf(newsprint.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: r.fallback,
		IncludeImages:  true,
		IncludeLinks:   true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return "", err
	}
	return buf.String(), nil
}
