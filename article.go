package newsprint

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// DownloadState describes how far an Article got in downloading its HTML.
type DownloadState int

const (
	NotStarted DownloadState = iota
	FailedResponse
	Success
)

func (s DownloadState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case FailedResponse:
		return "failed_response"
	case Success:
		return "success"
	}
	return fmt.Sprintf("DownloadState(%d)", int(s))
}

// Overrides holds settings adopted while processing a single article. They
// take precedence over the shared Config for the rest of that article's run.
type Overrides struct {
	Language string `json:"language,omitempty"`
}

// Article is a single downloadable, parseable document.
//
// Content fields are clipped to the limits of Config at every assignment
// site; use the Config.Clip* functions when setting them.
type Article struct {
	URL         string `json:"url"`
	OriginalURL string `json:"original_url"`
	SourceURL   string `json:"source_url"`

	// ReadMoreLink is an XPath expression, possibly a union of several,
	// selecting a link to the full article on a preview page.
	ReadMoreLink string `json:"read_more_link"`

	Title         string             `json:"title"`
	Text          string             `json:"text"`
	TextCleaned   string             `json:"text_cleaned"`
	Summary       string             `json:"summary"`
	Keywords      []string           `json:"keywords"`
	KeywordScores map[string]float64 `json:"keyword_scores"`
	MetaKeywords  []string           `json:"meta_keywords"`
	Tags          []string           `json:"tags"`
	Authors       []string           `json:"authors"`
	PublishDate   time.Time          `json:"publish_date"`

	TopImage string   `json:"top_image"`
	MetaImg  string   `json:"meta_img"`
	Images   []string `json:"images"`
	Movies   []string `json:"movies"`

	HTML        string `json:"html"`
	ArticleHTML string `json:"article_html"`

	MetaDescription string            `json:"meta_description"`
	MetaLang        string            `json:"meta_lang"`
	MetaFavicon     string            `json:"meta_favicon"`
	MetaSiteName    string            `json:"meta_site_name"`
	MetaType        string            `json:"meta_type"`
	MetaData        map[string]string `json:"meta_data"`
	CanonicalLink   string            `json:"canonical_link"`

	IsParsed      bool          `json:"is_parsed"`
	DownloadState DownloadState `json:"download_state"`
	DownloadErr   string        `json:"download_exception_msg,omitempty"`
	History       []string      `json:"history"`

	Overrides Overrides `json:"overrides"`
	Config    *Config   `json:"config"`

	doc                 *Tree
	cleanDoc            *Tree
	topNode             NodeRef
	cleanTopNode        NodeRef
	topNodeComplemented *DetachedNode
}

// ArticleOption configures an Article at construction.
type ArticleOption func(*Article)

// WithTitle sets a default title used when none can be extracted.
func WithTitle(title string) ArticleOption {
	return func(a *Article) {
		a.Title = title
	}
}

// WithSourceURL sets the URL of the site the article belongs to.
func WithSourceURL(sourceURL string) ArticleOption {
	return func(a *Article) {
		a.SourceURL = sourceURL
	}
}

// WithReadMoreLink sets the XPath selecting a link to the full article.
// Alternatives may be joined with "|".
func WithReadMoreLink(expr string) ArticleOption {
	return func(a *Article) {
		a.ReadMoreLink = expr
	}
}

// WithConfig sets the configuration used for this article.
func WithConfig(cfg *Config) ArticleOption {
	return func(a *Article) {
		a.Config = cfg
	}
}

// NewArticle constructs an Article for rawURL, which may be a URL or a
// file:// location. No I/O is performed.
func NewArticle(rawURL string, opts ...ArticleOption) (*Article, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, Errorf(ECONFIG, "article URL required")
	}

	a := &Article{
		KeywordScores: map[string]float64{},
		MetaData:      map[string]string{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Config == nil {
		a.Config = DefaultConfig()
	}
	if err := a.Config.Validate(); err != nil {
		return nil, err
	}

	if a.SourceURL == "" {
		source, err := inferSourceURL(rawURL)
		if err != nil {
			return nil, err
		}
		a.SourceURL = source
	}

	prepared, err := PrepareURL(rawURL, a.SourceURL)
	if err != nil {
		return nil, err
	}
	a.URL = prepared
	a.OriginalURL = prepared
	a.Title = a.Config.ClipTitle(a.Title)

	return a, nil
}

func inferSourceURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(ECONFIG, "input url bad format: %s", rawURL)
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + u.Host, nil
}

// PrepareURL resolves rawURL against sourceURL. Absolute URLs are returned
// unchanged apart from normalization.
func PrepareURL(rawURL, sourceURL string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(ECONFIG, "input url bad format: %s", rawURL)
	}
	if ref.IsAbs() || sourceURL == "" {
		return ref.String(), nil
	}
	base, err := url.Parse(sourceURL)
	if err != nil {
		return "", Errorf(ECONFIG, "source url bad format: %s", sourceURL)
	}
	return base.ResolveReference(ref).String(), nil
}

// Language returns the language in effect for this article: an adopted
// override if present, otherwise the configured language.
func (a *Article) Language() string {
	if a.Overrides.Language != "" {
		return a.Overrides.Language
	}
	return a.Config.Language
}

// Doc returns the working document tree, or nil before parsing.
func (a *Article) Doc() *Tree {
	return a.doc
}

// SetDoc replaces the working tree. Any top node taken from the previous
// tree is dropped.
func (a *Article) SetDoc(t *Tree) {
	a.doc = t
	a.topNode = NodeRef{}
}

// CleanDoc returns the cleaned copy of the document, or nil.
func (a *Article) CleanDoc() *Tree {
	return a.cleanDoc
}

// SetCleanDoc replaces the cleaned tree. Any clean top node taken from the
// previous tree is dropped. The cleaned tree must not be the working tree.
func (a *Article) SetCleanDoc(t *Tree) error {
	if t != nil && t == a.doc {
		return Errorf(EINVALID, "clean document must not share nodes with the document")
	}
	a.cleanDoc = t
	a.cleanTopNode = NodeRef{}
	return nil
}

// TopNode returns the reference to the article body within Doc.
func (a *Article) TopNode() NodeRef {
	return a.topNode
}

// SetTopNode sets the article body reference. A non-zero ref must point at
// a live element of Doc.
func (a *Article) SetTopNode(ref NodeRef) error {
	if !ref.IsZero() && !ref.In(a.doc) {
		return Errorf(EINVALID, "top node is not reachable from the document")
	}
	a.topNode = ref
	return nil
}

// CleanTopNode returns the reference to the article body within CleanDoc.
func (a *Article) CleanTopNode() NodeRef {
	return a.cleanTopNode
}

// SetCleanTopNode sets the clean body reference. A non-zero ref must point
// at a live element of CleanDoc.
func (a *Article) SetCleanTopNode(ref NodeRef) error {
	if !ref.IsZero() && !ref.In(a.cleanDoc) {
		return Errorf(EINVALID, "clean top node is not reachable from the clean document")
	}
	a.cleanTopNode = ref
	return nil
}

// TopNodeComplemented returns the detached top node with its qualifying
// siblings.
func (a *Article) TopNodeComplemented() *DetachedNode {
	return a.topNodeComplemented
}

// SetTopNodeComplemented stores the detached complemented node.
func (a *Article) SetTopNodeComplemented(d *DetachedNode) {
	a.topNodeComplemented = d
}

// RequireDownloaded returns EPRECONDITION unless the download succeeded.
func (a *Article) RequireDownloaded() error {
	switch a.DownloadState {
	case NotStarted:
		return Errorf(EPRECONDITION, "you must call Download() on an article first")
	case FailedResponse:
		return Errorf(EPRECONDITION, "article Download() failed with %s on URL %s", a.DownloadErr, a.URL)
	}
	return nil
}

// RequireParsed returns EPRECONDITION unless the article has been parsed.
func (a *Article) RequireParsed() error {
	if !a.IsParsed {
		return Errorf(EPRECONDITION, "you must call Parse() on an article first")
	}
	return nil
}

var mediaMarkers = []string{
	"/video",
	"/slide",
	"/gallery",
	"/powerpoint",
	"/fashion",
	"/glamour",
	"/cloth",
}

// IsMediaNews reports whether the URL points at media-heavy content such as
// a gallery or a video page.
func (a *Article) IsMediaNews() bool {
	for _, m := range mediaMarkers {
		if strings.Contains(a.URL, m) {
			return true
		}
	}
	return false
}

// IsValidURL reports whether the article URL looks like a news article.
func (a *Article) IsValidURL() bool {
	return IsValidURL(a.URL)
}

// Imgs is an alias for Images.
func (a *Article) Imgs() []string {
	return a.Images
}

// TopImg is an alias for TopImage.
func (a *Article) TopImg() string {
	return a.TopImage
}

// Equal reports whether two articles carry the same content. List fields
// are compared regardless of order.
func (a *Article) Equal(other *Article) bool {
	if other == nil {
		return false
	}
	return a.URL == other.URL &&
		a.Title == other.Title &&
		a.Text == other.Text &&
		a.TopImage == other.TopImage &&
		a.PublishDate.Equal(other.PublishDate) &&
		sameItems(a.Movies, other.Movies) &&
		sameItems(a.Authors, other.Authors) &&
		sameItems(a.Keywords, other.Keywords) &&
		sameItems(a.Images, other.Images)
}

func sameItems(x, y []string) bool {
	return slices.Equal(slices.Sorted(slices.Values(x)), slices.Sorted(slices.Values(y)))
}

func (a *Article) String() string {
	var b strings.Builder
	b.WriteString("__Title__: ")
	b.WriteString(a.Title)
	b.WriteString("\n\n ")
	runes := []rune(a.Text)
	if len(runes) > 100 {
		b.WriteString(string(runes[:50]))
		b.WriteString(" [...] ")
		b.WriteString(string(runes[len(runes)-50:]))
	} else {
		b.WriteString(a.Text)
	}
	return b.String()
}
