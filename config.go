package newsprint

import (
	"maps"
	"slices"
	"time"
)

// Default configuration values.
const (
	DefaultMaxTitle         = 200
	DefaultMaxText          = 100000
	DefaultMaxKeywords      = 35
	DefaultMaxAuthors       = 10
	DefaultMaxSummary       = 5000
	DefaultMaxSummarySent   = 5
	DefaultMinWordCount     = 300
	DefaultMinSentCount     = 7
	DefaultLanguage         = "en"
	DefaultTransportTimeout = 7 * time.Second
	DefaultUserAgent        = "newsprint/1.0"
)

// DefaultArticleJSONFields lists the fields included in an Article export
// when the configuration does not name its own.
var DefaultArticleJSONFields = []string{
	"url",
	"read_more_link",
	"language",
	"title",
	"top_image",
	"meta_img",
	"images",
	"movies",
	"keywords",
	"keyword_scores",
	"meta_keywords",
	"tags",
	"authors",
	"publish_date",
	"summary",
	"meta_description",
	"meta_lang",
	"meta_favicon",
	"meta_site_name",
	"canonical_link",
	"text",
}

// Config holds the per-run settings for downloading, parsing and analyzing
// an article. A limit of zero disables the corresponding truncation.
type Config struct {
	MaxTitle       int `json:"max_title" yaml:"max_title"`
	MaxText        int `json:"max_text" yaml:"max_text"`
	MaxKeywords    int `json:"max_keywords" yaml:"max_keywords"`
	MaxAuthors     int `json:"max_authors" yaml:"max_authors"`
	MaxSummary     int `json:"max_summary" yaml:"max_summary"`
	MaxSummarySent int `json:"max_summary_sent" yaml:"max_summary_sent"`

	MinWordCount int `json:"min_word_count" yaml:"min_word_count"`
	MinSentCount int `json:"min_sent_count" yaml:"min_sent_count"`

	// FollowMetaRefresh enables following a single <meta http-equiv="refresh"> hop.
	FollowMetaRefresh bool `json:"follow_meta_refresh" yaml:"follow_meta_refresh"`

	// UseMetaLanguage adopts the language declared by the page for the rest
	// of the run, when that language is supported.
	UseMetaLanguage bool   `json:"use_meta_language" yaml:"use_meta_language"`
	Language        string `json:"language" yaml:"language"`

	ArticleJSONFields []string `json:"article_json_fields" yaml:"article_json_fields"`

	Transport TransportConfig `json:"transport" yaml:"transport"`
}

// TransportConfig holds the request parameters handed to the transport.
type TransportConfig struct {
	UserAgent          string            `json:"user_agent" yaml:"user_agent"`
	Headers            map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Cookies            map[string]string `json:"cookies,omitempty" yaml:"cookies,omitempty"`
	Username           string            `json:"username,omitempty" yaml:"username,omitempty"`
	Password           string            `json:"password,omitempty" yaml:"password,omitempty"`
	Timeout            time.Duration     `json:"timeout" yaml:"timeout"`
	AllowRedirects     bool              `json:"allow_redirects" yaml:"allow_redirects"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	CertFile           string            `json:"cert_file,omitempty" yaml:"cert_file,omitempty"`
	KeyFile            string            `json:"key_file,omitempty" yaml:"key_file,omitempty"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		MaxTitle:          DefaultMaxTitle,
		MaxText:           DefaultMaxText,
		MaxKeywords:       DefaultMaxKeywords,
		MaxAuthors:        DefaultMaxAuthors,
		MaxSummary:        DefaultMaxSummary,
		MaxSummarySent:    DefaultMaxSummarySent,
		MinWordCount:      DefaultMinWordCount,
		MinSentCount:      DefaultMinSentCount,
		UseMetaLanguage:   true,
		Language:          DefaultLanguage,
		ArticleJSONFields: slices.Clone(DefaultArticleJSONFields),
		Transport: TransportConfig{
			UserAgent:      DefaultUserAgent,
			Timeout:        DefaultTransportTimeout,
			AllowRedirects: true,
		},
	}
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"max title", c.MaxTitle},
		{"max text", c.MaxText},
		{"max keywords", c.MaxKeywords},
		{"max authors", c.MaxAuthors},
		{"max summary", c.MaxSummary},
		{"max summary sentences", c.MaxSummarySent},
		{"min word count", c.MinWordCount},
		{"min sentence count", c.MinSentCount},
	}
	for _, l := range limits {
		if l.value < 0 {
			return Errorf(ECONFIG, "%s must not be negative", l.name)
		}
	}
	if c.Language == "" {
		return Errorf(ECONFIG, "language required")
	}
	if c.Transport.Timeout < 0 {
		return Errorf(ECONFIG, "transport timeout must not be negative")
	}
	if (c.Transport.CertFile == "") != (c.Transport.KeyFile == "") {
		return Errorf(ECONFIG, "client certificate requires both cert and key files")
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	other := *c
	other.ArticleJSONFields = slices.Clone(c.ArticleJSONFields)
	other.Transport.Headers = maps.Clone(c.Transport.Headers)
	other.Transport.Cookies = maps.Clone(c.Transport.Cookies)
	return &other
}

// withoutCredentials returns a deep copy with the transport credentials
// removed, for storing alongside snapshots.
func (c *Config) withoutCredentials() *Config {
	other := c.Clone()
	other.Transport.Headers = nil
	other.Transport.Cookies = nil
	other.Transport.Username = ""
	other.Transport.Password = ""
	other.Transport.Proxy = ""
	return other
}

// ClipTitle returns title truncated to MaxTitle characters.
func (c *Config) ClipTitle(title string) string {
	return clipRunes(title, c.MaxTitle)
}

// ClipText returns text truncated to MaxText characters.
func (c *Config) ClipText(text string) string {
	return clipRunes(text, c.MaxText)
}

// ClipSummary returns summary truncated to MaxSummary characters.
func (c *Config) ClipSummary(summary string) string {
	return clipRunes(summary, c.MaxSummary)
}

// ClipAuthors returns at most MaxAuthors authors.
func (c *Config) ClipAuthors(authors []string) []string {
	return clipSlice(authors, c.MaxAuthors)
}

// ClipKeywords returns at most MaxKeywords keywords.
func (c *Config) ClipKeywords(keywords []string) []string {
	return clipSlice(keywords, c.MaxKeywords)
}

func clipRunes(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

func clipSlice(items []string, limit int) []string {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}
