package pipeline_test

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/mock"
	"github.com/fwojciec/newsprint/pipeline"
	"golang.org/x/net/html"
)

// page is a canned fetch response.
type page struct {
	html   string
	status int
	err    error
}

// siteFetcher serves canned pages by URL and records every request.
type siteFetcher struct {
	mu    sync.Mutex
	pages map[string]page
	calls []string
}

func newSiteFetcher(pages map[string]page) *siteFetcher {
	return &siteFetcher{pages: pages}
}

func (s *siteFetcher) mock() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*newsprint.Response, error) {
			s.mu.Lock()
			s.calls = append(s.calls, url)
			s.mu.Unlock()

			p, ok := s.pages[url]
			if !ok {
				return &newsprint.Response{HTML: "not found", StatusCode: 404}, nil
			}
			if p.err != nil {
				return nil, p.err
			}
			status := p.status
			if status == 0 {
				status = 200
			}
			return &newsprint.Response{HTML: p.html, StatusCode: status, History: []string{url}}, nil
		},
		CloseFn: func() error { return nil },
	}
}

func (s *siteFetcher) requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// findElement returns the first element named tag under n.
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

// textOf returns the whitespace-collapsed text under n.
func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// articleSelector selects the first <article>, falling back to <body>.
func articleSelector() *mock.NodeSelector {
	return &mock.NodeSelector{
		SelectTopNodeFn: func(t *newsprint.Tree) newsprint.Selection {
			n := findElement(t.Root(), "article")
			if n == nil {
				n = findElement(t.Root(), "body")
			}
			if n == nil {
				return newsprint.Selection{}
			}
			ref := t.Ref(n)
			return newsprint.Selection{Top: ref, Complemented: ref.Detach()}
		},
	}
}

// newProcessor returns a Processor whose collaborators are simple stand-ins:
// the reducer passes the page through, the selector picks <article>, and the
// formatter returns the node text.
func newProcessor(fetcher newsprint.Fetcher) *pipeline.Processor {
	return &pipeline.Processor{
		Fetcher: fetcher,
		MetadataExtractor: &mock.MetadataExtractor{
			ExtractMetadataFn: func(string, *newsprint.Tree) *newsprint.Metadata {
				return &newsprint.Metadata{}
			},
		},
		Reducer: &mock.Reducer{
			ReduceFn: func(_, html string) (string, error) { return html, nil },
		},
		Cleaner:      &mock.Cleaner{CleanFn: func(*html.Node) {}},
		NodeSelector: articleSelector(),
		Videos: &mock.VideoExtractor{
			VideosFn: func(*newsprint.Tree, newsprint.NodeRef) []newsprint.Video { return nil },
		},
		Images: &mock.ImageExtractor{
			ExtractImagesFn: func(string, *newsprint.Tree, newsprint.NodeRef) *newsprint.Images {
				return &newsprint.Images{}
			},
		},
		Formatter: &mock.Formatter{
			FormatFn: func(n *html.Node, _ string) (string, string, error) {
				return textOf(n), "<p>" + textOf(n) + "</p>", nil
			},
		},
		StopWords: &mock.StopWordsService{
			StopWordsFn: func(string) (newsprint.StopWords, error) {
				return newsprint.StopWords{"the": {}}, nil
			},
			LanguagesFn: func() []string { return []string{"de", "en"} },
		},
		Scorer: &mock.KeywordScorer{
			KeywordsFn: func(string, newsprint.StopWords, int) []newsprint.Keyword { return nil },
		},
		Summarizer: &mock.Summarizer{
			SummarizeFn: func(context.Context, string, string, newsprint.StopWords, int) ([]string, error) {
				return nil, nil
			},
		},
	}
}
