package mock

import (
	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html"
)

var (
	_ newsprint.Formatter = (*Formatter)(nil)
	_ newsprint.Sanitizer = (*Sanitizer)(nil)
	_ newsprint.Converter = (*Converter)(nil)
)

// Formatter is a mock implementation of newsprint.Formatter.
type Formatter struct {
	FormatFn func(n *html.Node, title string) (string, string, error)
}

func (f *Formatter) Format(n *html.Node, title string) (string, string, error) {
	return f.FormatFn(n, title)
}

// Sanitizer is a mock implementation of newsprint.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

// Converter is a mock implementation of newsprint.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
