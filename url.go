package newsprint

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	dateInPath = regexp.MustCompile(`(?:^|/)(?:19|20)\d{2}[/-]?(?:[01]?\d)[/-]?(?:[0-3]?\d)?(?:/|$)`)

	// Extensions of files that can hold an article. Paths with any other
	// extension are treated as assets.
	articleExtensions = map[string]bool{
		"html": true, "htm": true, "md": true, "rst": true, "aspx": true,
		"jsp": true, "rhtml": true, "cgi": true, "xhtml": true, "jhtml": true,
		"asp": true, "shtml": true, "php": true,
	}

	// Path segments that mark site sections rather than articles.
	nonArticleSegments = map[string]bool{
		"about": true, "account": true, "admin": true, "advert": true,
		"browse": true, "careers": true, "contact": true, "donate": true,
		"faq": true, "feedback": true, "howto": true, "login": true,
		"preferences": true, "privacy": true, "shop": true, "signup": true,
		"subscribe": true, "terms": true,
	}
)

// IsValidURL reports whether rawURL looks like a link to a news article
// rather than a section page, an asset, or another site.
func IsValidURL(rawURL string) bool {
	if len(rawURL) < 11 {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if !strings.Contains(u.Hostname(), ".") {
		return false
	}

	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return false
	}
	if ext := strings.TrimPrefix(path.Ext(p), "."); ext != "" && !articleExtensions[strings.ToLower(ext)] {
		return false
	}

	segments := strings.Split(strings.Trim(p, "/"), "/")
	for _, s := range segments {
		if nonArticleSegments[strings.ToLower(s)] {
			return false
		}
	}

	if dateInPath.MatchString(u.Path) {
		return true
	}

	slug := strings.TrimSuffix(segments[len(segments)-1], path.Ext(p))
	if strings.Count(slug, "-") >= 2 || strings.Count(slug, "_") >= 2 {
		return true
	}
	// Numeric IDs in the last two segments are common for article permalinks.
	for _, s := range segments[max(0, len(segments)-2):] {
		if len(s) >= 5 && strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
			return true
		}
	}
	return false
}
