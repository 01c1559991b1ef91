// Package htmlquery evaluates XPath read-more selectors with antchfx/htmlquery.
package htmlquery

import (
	"slices"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html"
)

// Ensure ReadMoreFinder implements newsprint.ReadMoreFinder at compile time.
var _ newsprint.ReadMoreFinder = (*ReadMoreFinder)(nil)

// ReadMoreFinder evaluates XPath expressions, including "|" unions of
// alternatives, against a page.
type ReadMoreFinder struct{}

// NewReadMoreFinder creates a new ReadMoreFinder.
func NewReadMoreFinder() *ReadMoreFinder {
	return &ReadMoreFinder{}
}

// ReadMoreLinks returns the href attribute of each node matching expr.
// Returns EINVALID if expr is not a valid XPath expression.
func (f *ReadMoreFinder) ReadMoreLinks(html, expr string) ([]string, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	doc, err := htmlquery.Parse(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	nodes, err := htmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, newsprint.Errorf(newsprint.EINVALID, "invalid read more expression %q: %s", expr, err)
	}

	sortDocumentOrder(doc, nodes)

	links := make([]string, len(nodes))
	for i, n := range nodes {
		links[i] = strings.TrimSpace(htmlquery.SelectAttr(n, "href"))
	}
	return links, nil
}

// sortDocumentOrder sorts nodes by their pre-order position in doc. QueryAll
// lists predicate matches by depth rather than position.
func sortDocumentOrder(doc *html.Node, nodes []*html.Node) {
	if len(nodes) < 2 {
		return
	}
	pos := make(map[*html.Node]int)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		pos[n] = len(pos)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	slices.SortStableFunc(nodes, func(a, b *html.Node) int {
		return pos[a] - pos[b]
	})
}
