// Package goquery implements the HTML extraction collaborators of newsprint
// (metadata, cleaning, top node selection, media, formatting) on top of
// PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/newsprint"
)

// Ensure MetadataExtractor implements newsprint.MetadataExtractor at compile time.
var _ newsprint.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads title, authors, dates and meta tags from a document.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata reads metadata from t. The tree is not modified.
func (e *MetadataExtractor) ExtractMetadata(pageURL string, t *newsprint.Tree) *newsprint.Metadata {
	doc := goquery.NewDocumentFromNode(t.Root())
	data := metaData(doc)

	return &newsprint.Metadata{
		Title:         title(doc, data),
		Authors:       authors(doc),
		PublishDate:   publishDate(pageURL, doc),
		Language:      language(doc, data),
		SiteName:      data["og:site_name"],
		Description:   firstNonEmpty(data["description"], data["og:description"]),
		CanonicalLink: canonicalLink(pageURL, doc, data),
		Type:          data["og:type"],
		Keywords:      splitList(data["keywords"]),
		Tags:          tags(doc, data),
		Data:          data,
	}
}

// metaData collects meta tag contents keyed by property, name or itemprop.
// The first occurrence of a key wins.
func metaData(doc *goquery.Document) map[string]string {
	data := map[string]string{}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key := firstNonEmpty(s.AttrOr("property", ""), s.AttrOr("name", ""), s.AttrOr("itemprop", ""))
		if key == "" {
			return
		}
		key = strings.ToLower(strings.TrimSpace(key))
		content := strings.TrimSpace(firstNonEmpty(s.AttrOr("content", ""), s.AttrOr("value", "")))
		if content == "" {
			return
		}
		if _, ok := data[key]; !ok {
			data[key] = content
		}
	})
	return data
}

var titleSeparators = []string{" | ", " - ", " – ", " — ", " » ", " :: ", " · "}

func title(doc *goquery.Document, data map[string]string) string {
	raw := collapse(doc.Find("head title").First().Text())
	h1 := collapse(doc.Find("h1").First().Text())
	og := data["og:title"]

	switch {
	case raw == "" && og != "":
		return og
	case raw == "":
		return h1
	case h1 != "" && h1 == raw:
		return raw
	case og != "" && og == raw:
		return raw
	}

	// Site names are commonly appended with a separator. Keep the part that
	// matches the headline or, failing that, the longest part.
	for _, sep := range titleSeparators {
		if !strings.Contains(raw, sep) {
			continue
		}
		parts := strings.Split(raw, sep)
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" && (p == h1 || p == og) {
				return p
			}
		}
		longest := ""
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if len(p) > len(longest) {
				longest = p
			}
		}
		return longest
	}
	return raw
}

var authorSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[name="dc.creator"]`,
	`[itemprop="author"] [itemprop="name"]`,
	`[itemprop="author"]`,
	`[rel="author"]`,
	`.byline-name`,
	`.author-name`,
	`.byline`,
}

var bylinePrefix = regexp.MustCompile(`(?i)^\s*(by|written by|posted by)\s*[:]?\s*`)

func authors(doc *goquery.Document) []string {
	var result []string
	seen := map[string]bool{}
	add := func(raw string) {
		raw = bylinePrefix.ReplaceAllString(collapse(raw), "")
		for _, name := range splitAuthors(raw) {
			if isURL(name) || len(strings.Fields(name)) > 5 {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, name)
		}
	}

	for _, sel := range authorSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if goquery.NodeName(s) == "meta" {
				add(s.AttrOr("content", ""))
				return
			}
			add(s.Text())
		})
		if len(result) > 0 {
			break
		}
	}
	return result
}

func splitAuthors(s string) []string {
	s = strings.NewReplacer(" and ", ",", " & ", ",", ";", ",").Replace(s)
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var dateSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property="article:published_time"]`, "content"},
	{`meta[property="og:published_time"]`, "content"},
	{`meta[name="pubdate"]`, "content"},
	{`meta[name="publishdate"]`, "content"},
	{`meta[name="publish-date"]`, "content"},
	{`meta[name="date"]`, "content"},
	{`meta[name="dc.date.issued"]`, "content"},
	{`meta[name="sailthru.date"]`, "content"},
	{`meta[itemprop="datePublished"]`, "content"},
	{`[itemprop="datePublished"]`, "datetime"},
	{`time[pubdate]`, "datetime"},
	{`time[datetime]`, "datetime"},
}

var urlDate = regexp.MustCompile(`/((?:19|20)\d{2})[/-](\d{1,2})[/-](\d{1,2})(?:/|$|[^\d])`)

func publishDate(pageURL string, doc *goquery.Document) time.Time {
	for _, d := range dateSelectors {
		var found time.Time
		doc.Find(d.selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			raw := strings.TrimSpace(s.AttrOr(d.attr, ""))
			if raw == "" {
				return true
			}
			t, err := dateparse.ParseAny(raw)
			if err != nil {
				return true
			}
			found = t
			return false
		})
		if !found.IsZero() {
			return found
		}
	}

	if m := urlDate.FindStringSubmatch(pageURL); m != nil {
		t, err := dateparse.ParseAny(m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3]))
		if err == nil {
			return t
		}
	}
	return time.Time{}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func language(doc *goquery.Document, data map[string]string) string {
	candidates := []string{
		doc.Find("html").First().AttrOr("lang", ""),
		doc.Find(`meta[http-equiv="content-language"], meta[http-equiv="Content-Language"]`).First().AttrOr("content", ""),
		data["lang"],
		data["og:locale"],
	}
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if len(c) < 2 {
			continue
		}
		c = c[:2]
		if c[0] >= 'a' && c[0] <= 'z' && c[1] >= 'a' && c[1] <= 'z' {
			return c
		}
	}
	return ""
}

func canonicalLink(pageURL string, doc *goquery.Document, data map[string]string) string {
	link := firstNonEmpty(
		doc.Find(`link[rel="canonical"]`).First().AttrOr("href", ""),
		data["og:url"],
	)
	if link == "" {
		return ""
	}
	return resolve(pageURL, link)
}

func tags(doc *goquery.Document, data map[string]string) []string {
	set := map[string]bool{}
	doc.Find(`a[rel="tag"], a[href*="/tag/"], a[href*="/tags/"]`).Each(func(_ int, s *goquery.Selection) {
		if t := collapse(s.Text()); t != "" {
			set[t] = true
		}
	})
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.AttrOr("content", "")); t != "" {
			set[t] = true
		}
	})
	if len(set) == 0 && data["news_keywords"] != "" {
		for _, t := range splitList(data["news_keywords"]) {
			set[t] = true
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// resolve resolves href against base. Returns "" if href cannot be parsed.
func resolve(base, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref.String()
	}
	return b.ResolveReference(ref).String()
}
