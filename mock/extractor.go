package mock

import (
	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html"
)

var (
	_ newsprint.MetadataExtractor = (*MetadataExtractor)(nil)
	_ newsprint.Reducer           = (*Reducer)(nil)
	_ newsprint.Cleaner           = (*Cleaner)(nil)
	_ newsprint.NodeSelector      = (*NodeSelector)(nil)
	_ newsprint.VideoExtractor    = (*VideoExtractor)(nil)
	_ newsprint.ImageExtractor    = (*ImageExtractor)(nil)
	_ newsprint.MetaRefresher     = (*MetaRefresher)(nil)
	_ newsprint.ReadMoreFinder    = (*ReadMoreFinder)(nil)
	_ newsprint.LanguageDetector  = (*LanguageDetector)(nil)
)

// MetadataExtractor is a mock implementation of newsprint.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(url string, t *newsprint.Tree) *newsprint.Metadata
}

func (m *MetadataExtractor) ExtractMetadata(url string, t *newsprint.Tree) *newsprint.Metadata {
	return m.ExtractMetadataFn(url, t)
}

// Reducer is a mock implementation of newsprint.Reducer.
type Reducer struct {
	ReduceFn func(url, html string) (string, error)
}

func (r *Reducer) Reduce(url, html string) (string, error) {
	return r.ReduceFn(url, html)
}

// Cleaner is a mock implementation of newsprint.Cleaner.
type Cleaner struct {
	CleanFn func(n *html.Node)
}

func (c *Cleaner) Clean(n *html.Node) {
	c.CleanFn(n)
}

// NodeSelector is a mock implementation of newsprint.NodeSelector.
type NodeSelector struct {
	SelectTopNodeFn func(t *newsprint.Tree) newsprint.Selection
}

func (s *NodeSelector) SelectTopNode(t *newsprint.Tree) newsprint.Selection {
	return s.SelectTopNodeFn(t)
}

// VideoExtractor is a mock implementation of newsprint.VideoExtractor.
type VideoExtractor struct {
	VideosFn func(t *newsprint.Tree, top newsprint.NodeRef) []newsprint.Video
}

func (v *VideoExtractor) Videos(t *newsprint.Tree, top newsprint.NodeRef) []newsprint.Video {
	return v.VideosFn(t, top)
}

// ImageExtractor is a mock implementation of newsprint.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(url string, t *newsprint.Tree, top newsprint.NodeRef) *newsprint.Images
}

func (i *ImageExtractor) ExtractImages(url string, t *newsprint.Tree, top newsprint.NodeRef) *newsprint.Images {
	return i.ExtractImagesFn(url, t, top)
}

// MetaRefresher is a mock implementation of newsprint.MetaRefresher.
type MetaRefresher struct {
	MetaRefreshURLFn func(html string) string
}

func (m *MetaRefresher) MetaRefreshURL(html string) string {
	return m.MetaRefreshURLFn(html)
}

// ReadMoreFinder is a mock implementation of newsprint.ReadMoreFinder.
type ReadMoreFinder struct {
	ReadMoreLinksFn func(html, expr string) ([]string, error)
}

func (r *ReadMoreFinder) ReadMoreLinks(html, expr string) ([]string, error) {
	return r.ReadMoreLinksFn(html, expr)
}

// LanguageDetector is a mock implementation of newsprint.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (l *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return l.DetectLanguageFn(text)
}
