// Package readability reduces news pages to their main content with
// go-readability.
package readability

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/newsprint"
	"github.com/go-shiori/go-readability"
)

// DefaultMinTextLength is the shortest reduced text, in characters, that is
// trusted over the full page.
const DefaultMinTextLength = 0

// Ensure Reducer implements newsprint.Reducer at compile time.
var _ newsprint.Reducer = (*Reducer)(nil)

// Reducer keeps the readable core of a page. Reductions whose text is
// shorter than the configured minimum are discarded, so the parse keeps
// the full document instead of a teaser.
type Reducer struct {
	minText int
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithMinTextLength discards reductions with fewer than n characters of text.
func WithMinTextLength(n int) Option {
	return func(r *Reducer) {
		r.minText = n
	}
}

// NewReducer creates a new Reducer.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{minText: DefaultMinTextLength}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce returns the main content fragment of rawHTML, or "" when the
// reduction is too short to trust. Relative links in the result are resolved
// against pageURL when it is absolute.
func (r *Reducer) Reduce(pageURL, rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", newsprint.Errorf(newsprint.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(strings.TrimSpace(article.TextContent)) < r.minText {
		return "", nil
	}
	return article.Content, nil
}
