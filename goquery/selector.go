package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html"
)

// Ensure NodeSelector implements newsprint.NodeSelector at compile time.
var _ newsprint.NodeSelector = (*NodeSelector)(nil)

const (
	// minParagraphWords is the word count below which a paragraph does not
	// contribute to its ancestors' score.
	minParagraphWords = 5

	// maxLinkDensity is the share of linked text above which a block is
	// treated as navigation.
	maxLinkDensity = 0.5

	// siblingThreshold is the share of the top node's mean paragraph length a
	// preceding sibling paragraph needs to join the complemented node.
	siblingThreshold = 0.3
)

var (
	positivePatterns = []string{"article", "content", "story", "entry", "post", "body", "text", "main"}
	negativePatterns = []string{"comment", "sidebar", "footer", "nav", "menu", "related", "share", "social", "promo", "widget"}
)

// NodeSelector picks the article body by scoring paragraph ancestors.
// Each qualifying paragraph adds its word count to its parent and half of it
// to its grandparent; class and id hints adjust the totals.
type NodeSelector struct{}

// NewNodeSelector creates a new NodeSelector.
func NewNodeSelector() *NodeSelector {
	return &NodeSelector{}
}

// SelectTopNode returns the best scoring element of t together with a
// detached copy complemented by qualifying preceding sibling paragraphs.
func (s *NodeSelector) SelectTopNode(t *newsprint.Tree) newsprint.Selection {
	scores := map[*html.Node]float64{}
	var order []*html.Node
	add := func(n *html.Node, v float64) {
		if n == nil || n.Type != html.ElementNode {
			return
		}
		if _, ok := scores[n]; !ok {
			order = append(order, n)
		}
		scores[n] += v
	}

	goquery.NewDocumentFromNode(t.Root()).Find("p, pre, td").Each(func(_ int, p *goquery.Selection) {
		score, ok := paragraphScore(p)
		if !ok {
			return
		}
		n := p.Nodes[0]
		add(n.Parent, score)
		if n.Parent != nil {
			add(n.Parent.Parent, score/2)
		}
	})

	var best *html.Node
	var bestScore float64
	for _, n := range order {
		total := scores[n] + attributeWeight(n)
		if total > bestScore {
			best, bestScore = n, total
		}
	}
	if best == nil {
		return newsprint.Selection{}
	}

	return newsprint.Selection{
		Top:          t.Ref(best),
		Complemented: complement(best),
	}
}

// paragraphScore returns the word count of a paragraph plus its commas, and
// false if the paragraph is too short or mostly links.
func paragraphScore(p *goquery.Selection) (float64, bool) {
	text := collapse(p.Text())
	words := len(strings.Fields(text))
	if words < minParagraphWords || linkDensity(p) > maxLinkDensity {
		return 0, false
	}
	return float64(words + strings.Count(text, ",")), true
}

func linkDensity(s *goquery.Selection) float64 {
	total := len(collapse(s.Text()))
	if total == 0 {
		return 0
	}
	linked := 0
	s.Find("a").Each(func(_ int, a *goquery.Selection) {
		linked += len(collapse(a.Text()))
	})
	return float64(linked) / float64(total)
}

func attributeWeight(n *html.Node) float64 {
	var w float64
	switch n.Data {
	case "article":
		w += 30
	case "main":
		w += 20
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" && attr.Key != "id" {
			continue
		}
		v := strings.ToLower(attr.Val)
		for _, p := range positivePatterns {
			if strings.Contains(v, p) {
				w += 25
				break
			}
		}
		for _, p := range negativePatterns {
			if strings.Contains(v, p) {
				w -= 25
				break
			}
		}
	}
	return w
}

// complement copies top and prepends copies of the paragraphs of preceding
// siblings that are long enough compared to the paragraphs of top.
func complement(top *html.Node) *newsprint.DetachedNode {
	detached := newsprint.NewDetachedNode(top)
	root := detached.Node()

	baseline := meanParagraphWords(goquery.NewDocumentFromNode(top).Find("p"))
	for sib := top.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type != html.ElementNode {
			continue
		}
		var paragraphs []*html.Node
		sel := goquery.NewDocumentFromNode(sib).Selection
		if sib.Data == "p" {
			paragraphs = sel.Nodes
		} else {
			paragraphs = sel.Find("p").Nodes
		}
		for i := len(paragraphs) - 1; i >= 0; i-- {
			p := goquery.NewDocumentFromNode(paragraphs[i]).Selection
			words := len(strings.Fields(p.Text()))
			if words == 0 || float64(words) < baseline*siblingThreshold || linkDensity(p) > maxLinkDensity {
				continue
			}
			root.InsertBefore(newsprint.NewDetachedNode(paragraphs[i]).Node(), root.FirstChild)
		}
	}
	return detached
}

func meanParagraphWords(ps *goquery.Selection) float64 {
	if ps.Length() == 0 {
		return 0
	}
	total := 0
	ps.Each(func(_ int, p *goquery.Selection) {
		total += len(strings.Fields(p.Text()))
	})
	return float64(total) / float64(ps.Length())
}
