package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseTree(t *testing.T, s string) *newsprint.Tree {
	t.Helper()

	tree, err := newsprint.ParseTree(s)
	require.NoError(t, err)
	return tree
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()

	s, err := newsprint.NewDetachedNode(n).HTML()
	require.NoError(t, err)
	return s
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
