package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Cleaner implements newsprint.Cleaner at compile time.
var _ newsprint.Cleaner = (*Cleaner)(nil)

// removeSelector matches elements that never hold article body content.
const removeSelector = "script, style, noscript, template, form, nav, aside, footer, " +
	"button, input, select, textarea, svg, " +
	`[role="navigation"], [role="complementary"], [aria-hidden="true"], [hidden]`

// boilerplateTokens are class or id tokens marking navigation, ads and
// social widgets.
var boilerplateTokens = map[string]bool{
	"nav": true, "navigation": true, "navbar": true, "menu": true,
	"sidebar": true, "footer": true, "masthead": true,
	"comment": true, "comments": true, "disqus": true,
	"ad": true, "ads": true, "advert": true, "advertisement": true, "sponsor": true, "sponsored": true,
	"social": true, "share": true, "sharing": true, "subscribe": true, "newsletter": true,
	"related": true, "recommended": true, "popular": true, "trending": true,
	"widget": true, "promo": true, "banner": true, "breadcrumb": true, "breadcrumbs": true,
	"cookie": true, "paywall": true, "modal": true, "popup": true,
}

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// Cleaner removes boilerplate elements and comments from a subtree.
// The root passed to Clean is never removed.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes boilerplate from n in place.
func (c *Cleaner) Clean(n *html.Node) {
	if n == nil {
		return
	}
	removeComments(n)

	sel := goquery.NewDocumentFromNode(n).Selection
	sel.Find(removeSelector).Remove()
	sel.Find("header").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered("article").Length() == 0
	}).Remove()
	sel.Find("[class], [id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return isBoilerplate(s)
	}).Remove()

	// Inline-only divs read as paragraphs.
	sel.Find("div").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Filter(blockSelector).Length() == 0 && strings.TrimSpace(s.Text()) != "" {
			s.Nodes[0].Data = "p"
			s.Nodes[0].DataAtom = atom.P
		}
	})
}

const blockSelector = "div, p, section, article, table, ul, ol, dl, pre, blockquote, h1, h2, h3, h4, h5, h6, figure, hr"

func isBoilerplate(s *goquery.Selection) bool {
	switch goquery.NodeName(s) {
	case "body", "html", "article", "main":
		return false
	}
	for _, attr := range []string{"class", "id"} {
		v, ok := s.Attr(attr)
		if !ok {
			continue
		}
		for _, tok := range tokenSplit.Split(strings.ToLower(v), -1) {
			if boilerplateTokens[tok] {
				return true
			}
		}
	}
	return false
}

func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}
