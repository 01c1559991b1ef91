package newsprint

import (
	"time"

	"golang.org/x/net/html"
)

// Metadata holds the document-level information declared by a page.
type Metadata struct {
	Title         string
	Authors       []string
	PublishDate   time.Time
	Language      string
	SiteName      string
	Description   string
	CanonicalLink string
	Type          string
	Keywords      []string
	Tags          []string

	// Data holds the remaining meta tags keyed by property or name.
	Data map[string]string
}

// MetadataExtractor extracts metadata from a document tree.
type MetadataExtractor interface {
	// ExtractMetadata reads metadata from t. The url is used to resolve
	// relative links and to recover dates embedded in the URL.
	ExtractMetadata(url string, t *Tree) *Metadata
}

// Reducer reduces a full HTML page to the fragment holding its main content.
type Reducer interface {
	Reduce(url, html string) (string, error)
}

// Cleaner removes boilerplate from a subtree in place.
type Cleaner interface {
	Clean(n *html.Node)
}

// Selection is the outcome of picking the article body in a tree.
type Selection struct {
	// Top references the best scoring element within the tree.
	Top NodeRef

	// Complemented is a detached copy of Top with its qualifying siblings.
	Complemented *DetachedNode
}

// NodeSelector picks the subtree most likely to hold the article body.
type NodeSelector interface {
	// SelectTopNode returns the zero Selection when no candidate qualifies.
	SelectTopNode(t *Tree) Selection
}

// Video is an embedded video reference.
type Video struct {
	Src      string `json:"src"`
	Provider string `json:"provider,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// VideoExtractor finds embedded videos.
type VideoExtractor interface {
	// Videos returns the videos found under top, or in t when top is zero.
	Videos(t *Tree, top NodeRef) []Video
}

// Images holds the image references of a page.
type Images struct {
	MetaImage string
	TopImage  string
	Images    []string
	Favicon   string
}

// ImageExtractor finds the images of a page.
type ImageExtractor interface {
	ExtractImages(url string, t *Tree, top NodeRef) *Images
}

// MetaRefresher finds meta refresh redirects.
type MetaRefresher interface {
	// MetaRefreshURL returns the refresh target declared by the page, or "".
	MetaRefreshURL(html string) string
}

// ReadMoreFinder evaluates read-more link selectors.
type ReadMoreFinder interface {
	// ReadMoreLinks returns the href of every node matching expr in document
	// order. Nodes without an href yield "".
	ReadMoreLinks(html, expr string) ([]string, error)
}

// LanguageDetector identifies the language of a text.
type LanguageDetector interface {
	// DetectLanguage returns an ISO 639-1 code and whether the guess is reliable.
	DetectLanguage(text string) (string, bool)
}
