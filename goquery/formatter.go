package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html"
)

// Ensure Formatter implements newsprint.Formatter at compile time.
var _ newsprint.Formatter = (*Formatter)(nil)

var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "dd": true, "div": true,
	"dl": true, "dt": true, "figcaption": true, "figure": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "li": true,
	"main": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "td": true, "th": true, "tr": true, "ul": true,
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// Formatter renders an article body as paragraphs of plain text and as
// HTML stripped of empty elements. The input node is not modified.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns the text and HTML of n. Paragraphs are separated by a blank
// line; a first paragraph repeating the title is dropped from the text.
func (f *Formatter) Format(n *html.Node, title string) (string, string, error) {
	if n == nil {
		return "", "", nil
	}

	clone := goquery.NewDocumentFromNode(n).Selection.Clone()
	removeEmpty(clone)
	root := clone.Nodes[0]

	var paragraphs []string
	var current strings.Builder
	flush := func() {
		if p := collapse(current.String()); p != "" {
			paragraphs = append(paragraphs, p)
		}
		current.Reset()
	}
	var walkText func(*html.Node)
	walkText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			current.WriteString(n.Data)
			return
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
			if n.Data == "br" {
				current.WriteString(" ")
				return
			}
		}
		block := n.Type == html.ElementNode && blockTags[n.Data]
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkText(c)
		}
		if block {
			flush()
		}
	}
	walkText(root)
	flush()

	if len(paragraphs) > 0 && title != "" && paragraphs[0] == collapse(title) {
		paragraphs = paragraphs[1:]
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", "", err
	}

	return strings.Join(paragraphs, "\n\n"), buf.String(), nil
}

// removeEmpty drops elements holding neither text nor media.
func removeEmpty(s *goquery.Selection) {
	s.Find("*").FilterFunction(func(_ int, e *goquery.Selection) bool {
		switch goquery.NodeName(e) {
		case "img", "br", "hr", "iframe", "video", "source", "embed", "object", "td", "th":
			return false
		}
		if skipTags[goquery.NodeName(e)] {
			return true
		}
		return strings.TrimSpace(e.Text()) == "" && e.Find("img, iframe, video, embed, object").Length() == 0
	}).Remove()
}
