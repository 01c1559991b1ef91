package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsprint"
)

// Ensure MetaRefresher implements newsprint.MetaRefresher at compile time.
var _ newsprint.MetaRefresher = (*MetaRefresher)(nil)

// MetaRefresher reads <meta http-equiv="refresh"> redirect targets.
type MetaRefresher struct{}

// NewMetaRefresher creates a new MetaRefresher.
func NewMetaRefresher() *MetaRefresher {
	return &MetaRefresher{}
}

// MetaRefreshURL returns the URL of the first refresh directive in html, or
// "" if there is none. The URL is returned as written.
func (r *MetaRefresher) MetaRefreshURL(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var target string
	doc.Find("meta[http-equiv]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(s.AttrOr("http-equiv", "")), "refresh") {
			return true
		}
		target = refreshTarget(s.AttrOr("content", ""))
		return target == ""
	})
	return target
}

// refreshTarget parses a refresh directive such as `5; url='/next'`.
func refreshTarget(content string) string {
	_, rest, ok := strings.Cut(content, ";")
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 4 || !strings.EqualFold(rest[:3], "url") {
		return ""
	}
	rest = strings.TrimSpace(rest[3:])
	rest, ok = strings.CutPrefix(rest, "=")
	if !ok {
		return ""
	}
	return strings.Trim(strings.TrimSpace(rest), `"'`)
}
