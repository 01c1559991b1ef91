package goquery

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsprint"
)

// Ensure the media extractors implement their interfaces at compile time.
var (
	_ newsprint.VideoExtractor = (*VideoExtractor)(nil)
	_ newsprint.ImageExtractor = (*ImageExtractor)(nil)
)

// videoProviders maps embed URL fragments to provider names.
var videoProviders = []struct {
	pattern  string
	provider string
}{
	{"youtube.com/embed/", "youtube"},
	{"youtube-nocookie.com/embed/", "youtube"},
	{"youtube.com/v/", "youtube"},
	{"player.vimeo.com/video/", "vimeo"},
	{"dailymotion.com/embed/", "dailymotion"},
	{"player.twitch.tv/", "twitch"},
	{"facebook.com/plugins/video", "facebook"},
	{"players.brightcove.net/", "brightcove"},
	{"jwplayer.com/", "jwplayer"},
}

var videoExtensions = map[string]bool{
	".mp4": true, ".m4v": true, ".webm": true, ".ogv": true, ".mov": true, ".m3u8": true,
}

// VideoExtractor finds embedded videos from known providers and HTML5
// video elements.
type VideoExtractor struct{}

// NewVideoExtractor creates a new VideoExtractor.
func NewVideoExtractor() *VideoExtractor {
	return &VideoExtractor{}
}

// Videos returns the videos under top, or under the whole tree when top is
// zero. Duplicate sources are reported once.
func (e *VideoExtractor) Videos(t *newsprint.Tree, top newsprint.NodeRef) []newsprint.Video {
	scope := goquery.NewDocumentFromNode(t.Root()).Selection
	if n := top.Node(); n != nil {
		scope = goquery.NewDocumentFromNode(n).Selection
	}

	var videos []newsprint.Video
	seen := map[string]bool{}
	addVideo := func(s *goquery.Selection, src string) {
		src = strings.TrimSpace(src)
		if src == "" || seen[src] {
			return
		}
		seen[src] = true
		videos = append(videos, newsprint.Video{
			Src:      src,
			Provider: provider(src),
			Width:    intAttr(s, "width"),
			Height:   intAttr(s, "height"),
		})
	}

	scope.Find("iframe, embed, object, video").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "iframe", "embed":
			src := firstNonEmpty(s.AttrOr("src", ""), s.AttrOr("data-src", ""))
			if provider(src) != "" {
				addVideo(s, src)
			}
		case "object":
			src := s.AttrOr("data", "")
			if src == "" {
				src = s.Find(`param[name="movie"]`).AttrOr("value", "")
			}
			if provider(src) != "" {
				addVideo(s, src)
			}
		case "video":
			src := s.AttrOr("src", "")
			if src == "" {
				src = s.Find("source[src]").First().AttrOr("src", "")
			}
			addVideo(s, src)
		}
	})
	return videos
}

func provider(src string) string {
	lower := strings.ToLower(src)
	for _, p := range videoProviders {
		if strings.Contains(lower, p.pattern) {
			return p.provider
		}
	}
	if u, err := url.Parse(lower); err == nil && videoExtensions[path.Ext(u.Path)] {
		return "file"
	}
	return ""
}

func intAttr(s *goquery.Selection, name string) int {
	v, err := strconv.Atoi(strings.TrimSuffix(s.AttrOr(name, ""), "px"))
	if err != nil {
		return 0
	}
	return v
}

// minImageSize is the smallest declared width or height of an image that
// may become the top image.
const minImageSize = 100

// ImageExtractor finds the meta image, top image, favicon and all images of
// a page.
type ImageExtractor struct{}

// NewImageExtractor creates a new ImageExtractor.
func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{}
}

// ExtractImages returns absolute image URLs. The top image is the meta image
// when present, otherwise the first sizeable image under top.
func (e *ImageExtractor) ExtractImages(pageURL string, t *newsprint.Tree, top newsprint.NodeRef) *newsprint.Images {
	doc := goquery.NewDocumentFromNode(t.Root())

	images := &newsprint.Images{
		MetaImage: metaImage(pageURL, doc),
		Favicon:   favicon(pageURL, doc),
	}

	seen := map[string]bool{}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if src := imageSrc(pageURL, s); src != "" && !seen[src] {
			seen[src] = true
			images.Images = append(images.Images, src)
		}
	})

	images.TopImage = images.MetaImage
	if images.TopImage == "" {
		if n := top.Node(); n != nil {
			images.TopImage = firstSizeableImage(pageURL, goquery.NewDocumentFromNode(n).Find("img"))
		}
	}
	if images.TopImage == "" {
		images.TopImage = firstSizeableImage(pageURL, doc.Find("img"))
	}
	return images
}

func metaImage(pageURL string, doc *goquery.Document) string {
	candidates := []string{
		doc.Find(`meta[property="og:image"]`).First().AttrOr("content", ""),
		doc.Find(`meta[property="og:image:url"]`).First().AttrOr("content", ""),
		doc.Find(`meta[name="twitter:image"]`).First().AttrOr("content", ""),
		doc.Find(`link[rel="image_src"]`).First().AttrOr("href", ""),
		doc.Find(`meta[itemprop="image"]`).First().AttrOr("content", ""),
	}
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return resolve(pageURL, c)
		}
	}
	return ""
}

func favicon(pageURL string, doc *goquery.Document) string {
	var href string
	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, rel := range strings.Fields(strings.ToLower(s.AttrOr("rel", ""))) {
			if rel == "icon" {
				href = s.AttrOr("href", "")
				return false
			}
		}
		return true
	})
	if href == "" {
		return ""
	}
	return resolve(pageURL, href)
}

func imageSrc(pageURL string, s *goquery.Selection) string {
	src := firstNonEmpty(s.AttrOr("src", ""), s.AttrOr("data-src", ""), s.AttrOr("data-original", ""))
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") {
		return ""
	}
	return resolve(pageURL, src)
}

func firstSizeableImage(pageURL string, imgs *goquery.Selection) string {
	var found string
	imgs.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		w, h := intAttr(s, "width"), intAttr(s, "height")
		if (w > 0 && w < minImageSize) || (h > 0 && h < minImageSize) {
			return true
		}
		if src := imageSrc(pageURL, s); src != "" {
			found = src
			return false
		}
		return true
	})
	return found
}
