package newsprint

import (
	"context"
	"maps"
	"slices"
	"time"
)

// Snapshot is a transferable record of an Article. The working document and
// the detached complemented node are kept as HTML together with the element
// IDs needed to rebind the top node after restore. The cleaned document and
// its top node are not kept.
type Snapshot struct {
	ID          string       `json:"id"`
	URL         string       `json:"url"`
	Article     *Article     `json:"article"`
	DOM         *DOMSnapshot `json:"dom,omitempty"`
	ContentHash string       `json:"content_hash"`
	CreatedAt   time.Time    `json:"created_at"`
}

// DOMSnapshot is the flattened DOM state of a parsed article.
type DOMSnapshot struct {
	DocHTML string `json:"doc_html"`

	// ElementIDs lists the ID of every element of the document in document order.
	ElementIDs []NodeID `json:"element_ids"`
	TopNodeID  NodeID   `json:"top_node_id"`

	TopNodeComplementedHTML string `json:"top_node_complemented_html,omitempty"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot URL required")
	}
	if s.Article == nil {
		return Errorf(EINVALID, "snapshot article required")
	}
	return nil
}

// Snapshot captures the article's state. DOM state is included only when
// the download succeeded and a top node was selected.
func (a *Article) Snapshot() (*Snapshot, error) {
	state := a.copyFields()
	if a.Config != nil {
		state.Config = a.Config.withoutCredentials()
	}

	s := &Snapshot{
		URL:     a.URL,
		Article: state,
	}

	if a.DownloadState != Success || a.topNode.Node() == nil {
		return s, nil
	}

	docHTML, err := a.doc.HTML()
	if err != nil {
		return nil, err
	}
	complemented, err := a.topNodeComplemented.HTML()
	if err != nil {
		return nil, err
	}
	s.DOM = &DOMSnapshot{
		DocHTML:                 docHTML,
		ElementIDs:              a.doc.ElementIDs(),
		TopNodeID:               a.topNode.ID(),
		TopNodeComplementedHTML: complemented,
	}
	return s, nil
}

// Restore rebuilds an Article from the snapshot. The document tree is
// reparsed and the top node rebound by ID. Returns EINTERNAL if the top
// node cannot be found in the restored tree.
func (s *Snapshot) Restore() (*Article, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	a := s.Article.copyFields()
	if a.Config == nil {
		a.Config = DefaultConfig()
	} else {
		a.Config = a.Config.Clone()
	}

	if s.DOM == nil {
		return a, nil
	}

	doc, err := parseTreeWithIDs(s.DOM.DocHTML, s.DOM.ElementIDs)
	if err != nil {
		return nil, err
	}
	top := doc.Lookup(s.DOM.TopNodeID)
	if top.IsZero() {
		return nil, Errorf(EINTERNAL, "top node %d missing from restored document", s.DOM.TopNodeID)
	}
	a.doc = doc
	a.topNode = top

	if s.DOM.TopNodeComplementedHTML != "" {
		complemented, err := ParseDetachedNode(s.DOM.TopNodeComplementedHTML)
		if err != nil {
			return nil, err
		}
		a.topNodeComplemented = complemented
	}
	return a, nil
}

// copyFields returns a copy of a's scalar and collection fields that shares
// no slices or maps with a. DOM state is left out and Config is shared.
func (a *Article) copyFields() *Article {
	return &Article{
		URL:             a.URL,
		OriginalURL:     a.OriginalURL,
		SourceURL:       a.SourceURL,
		ReadMoreLink:    a.ReadMoreLink,
		Title:           a.Title,
		Text:            a.Text,
		TextCleaned:     a.TextCleaned,
		Summary:         a.Summary,
		Keywords:        slices.Clone(a.Keywords),
		KeywordScores:   maps.Clone(a.KeywordScores),
		MetaKeywords:    slices.Clone(a.MetaKeywords),
		Tags:            slices.Clone(a.Tags),
		Authors:         slices.Clone(a.Authors),
		PublishDate:     a.PublishDate,
		TopImage:        a.TopImage,
		MetaImg:         a.MetaImg,
		Images:          slices.Clone(a.Images),
		Movies:          slices.Clone(a.Movies),
		HTML:            a.HTML,
		ArticleHTML:     a.ArticleHTML,
		MetaDescription: a.MetaDescription,
		MetaLang:        a.MetaLang,
		MetaFavicon:     a.MetaFavicon,
		MetaSiteName:    a.MetaSiteName,
		MetaType:        a.MetaType,
		MetaData:        maps.Clone(a.MetaData),
		CanonicalLink:   a.CanonicalLink,
		IsParsed:        a.IsParsed,
		DownloadState:   a.DownloadState,
		DownloadErr:     a.DownloadErr,
		History:         slices.Clone(a.History),
		Overrides:       a.Overrides,
		Config:          a.Config,
	}
}

// SnapshotService represents a service for storing article snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot and assigns its ID.
	CreateSnapshot(ctx context.Context, s *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindLatestSnapshot retrieves the most recent snapshot for an article URL.
	// Returns ENOTFOUND if no snapshot exists.
	FindLatestSnapshot(ctx context.Context, url string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SnapshotCache stores snapshots for fast lookup by article URL.
type SnapshotCache interface {
	// GetSnapshot returns ENOTFOUND on a cache miss.
	GetSnapshot(ctx context.Context, url string) (*Snapshot, error)
	SetSnapshot(ctx context.Context, s *Snapshot) error
}
