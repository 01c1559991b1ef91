package newsprint

import "golang.org/x/net/html"

// Formatter renders an article body subtree as text and HTML.
type Formatter interface {
	// Format returns the plain text of n and a cleaned HTML rendering of it.
	// The title is used to drop a leading repeat of the headline.
	Format(n *html.Node, title string) (text, articleHTML string, err error)
}

// Sanitizer restricts article HTML to a safe subset of markup.
type Sanitizer interface {
	Sanitize(html string) string
}

// Converter renders an article's ArticleHTML as Markdown for export.
type Converter interface {
	Convert(html string) (string, error)
}
