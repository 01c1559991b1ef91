package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/htmlquery"
	"github.com/fwojciec/newsprint/mock"
	"github.com/fwojciec/newsprint/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storyURL = "https://example.com/news/story"

func newArticle(t *testing.T, opts ...newsprint.ArticleOption) *newsprint.Article {
	t.Helper()
	a, err := newsprint.NewArticle(storyURL, opts...)
	require.NoError(t, err)
	return a
}

func followRefresh() *newsprint.Config {
	cfg := newsprint.DefaultConfig()
	cfg.FollowMetaRefresh = true
	return cfg
}

// refreshTargets maps page content to the refresh target it declares.
func refreshTargets(targets map[string]string) *mock.MetaRefresher {
	return &mock.MetaRefresher{
		MetaRefreshURLFn: func(html string) string { return targets[html] },
	}
}

func TestProcessor_Download(t *testing.T) {
	t.Parallel()

	t.Run("records html and history on success", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {html: "<p>story</p>"}})
		p := &pipeline.Processor{Fetcher: site.mock()}
		a := newArticle(t)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.Success, a.DownloadState)
		assert.Equal(t, "<p>story</p>", a.HTML)
		assert.Equal(t, []string{storyURL}, a.History)
		assert.Empty(t, a.DownloadErr)
	})

	t.Run("records failing status code", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {html: "gone", status: 410}})
		p := &pipeline.Processor{Fetcher: site.mock()}
		a := newArticle(t)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.FailedResponse, a.DownloadState)
		assert.Equal(t, "Status code 410 for url "+storyURL, a.DownloadErr)
		assert.Empty(t, a.HTML)
	})

	t.Run("names the protection vendor", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {
			html:   `<script src="/cdn-cgi/challenge-platform/h/b/orchestrate/chl_page/v1"></script>`,
			status: 403,
		}})
		p := &pipeline.Processor{Fetcher: site.mock()}
		a := newArticle(t)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "Website protected with Cloudflare, url: "+storyURL, a.DownloadErr)
	})

	t.Run("records transport error text", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {err: errors.New("connection refused")}})
		p := &pipeline.Processor{Fetcher: site.mock()}
		a := newArticle(t)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.FailedResponse, a.DownloadState)
		assert.Equal(t, "connection refused", a.DownloadErr)
	})

	t.Run("records application error message", func(t *testing.T) {
		t.Parallel()

		files := &mock.Fetcher{
			FetchFn: func(context.Context, string) (*newsprint.Response, error) {
				return nil, newsprint.Errorf(newsprint.ENOTFOUND, "no such file or directory")
			},
		}
		p := &pipeline.Processor{Files: files}
		a, err := newsprint.NewArticle("file:///tmp/missing.html")
		require.NoError(t, err)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.FailedResponse, a.DownloadState)
		assert.Equal(t, "no such file or directory", a.DownloadErr)
	})

	t.Run("dispatches file URLs to the file fetcher", func(t *testing.T) {
		t.Parallel()

		network := newSiteFetcher(nil)
		files := newSiteFetcher(map[string]page{"file:///tmp/story.html": {html: "<p>local</p>"}})
		p := &pipeline.Processor{Fetcher: network.mock(), Files: files.mock()}
		a, err := newsprint.NewArticle("file:///tmp/story.html")
		require.NoError(t, err)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "<p>local</p>", a.HTML)
		assert.Empty(t, network.requested())
	})

	t.Run("uses input html without fetching", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(nil)
		p := &pipeline.Processor{Fetcher: site.mock()}
		a := newArticle(t)

		err := p.Download(context.Background(), a,
			pipeline.WithInputHTML("<p>cached</p>"),
			pipeline.WithTitle("Forced Title"),
		)

		require.NoError(t, err)
		assert.Equal(t, newsprint.Success, a.DownloadState)
		assert.Equal(t, "<p>cached</p>", a.HTML)
		assert.Equal(t, "Forced Title", a.Title)
		assert.Empty(t, site.requested())
	})

	t.Run("clips forced title", func(t *testing.T) {
		t.Parallel()

		cfg := newsprint.DefaultConfig()
		cfg.MaxTitle = 6
		p := &pipeline.Processor{}
		a := newArticle(t, newsprint.WithConfig(cfg))

		require.NoError(t, p.Download(context.Background(), a,
			pipeline.WithInputHTML("<p>x</p>"),
			pipeline.WithTitle("Forced Title"),
		))

		assert.Equal(t, "Forced", a.Title)
	})

	t.Run("clears failure on successful retry", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (*newsprint.Response, error) {
				attempts++
				if attempts == 1 {
					return nil, errors.New("timeout")
				}
				return &newsprint.Response{HTML: "<p>ok</p>", StatusCode: 200}, nil
			},
		}
		p := &pipeline.Processor{Fetcher: fetcher}
		a := newArticle(t)

		require.NoError(t, p.Download(context.Background(), a))
		require.Equal(t, newsprint.FailedResponse, a.DownloadState)
		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.Success, a.DownloadState)
		assert.Empty(t, a.DownloadErr)
	})

	t.Run("requires a fetcher", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Processor{}

		err := p.Download(context.Background(), newArticle(t))

		assert.Equal(t, newsprint.ECONFIG, newsprint.ErrorCode(err))
	})
}

func TestProcessor_Download_MetaRefresh(t *testing.T) {
	t.Parallel()

	t.Run("follows a single hop", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{
			storyURL:                {html: "A"},
			"https://example.com/b": {html: "B"},
			"https://example.com/c": {html: "C"},
		})
		p := &pipeline.Processor{
			Fetcher:       site.mock(),
			MetaRefresher: refreshTargets(map[string]string{"A": "/b", "B": "/c"}),
		}
		a := newArticle(t, newsprint.WithConfig(followRefresh()))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "B", a.HTML)
		assert.Equal(t, []string{storyURL, "https://example.com/b"}, site.requested())
		assert.Equal(t, storyURL, a.URL)
	})

	t.Run("follows from input html", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{"https://example.com/b": {html: "B"}})
		p := &pipeline.Processor{
			Fetcher:       site.mock(),
			MetaRefresher: refreshTargets(map[string]string{"A": "https://example.com/b"}),
		}
		a := newArticle(t, newsprint.WithConfig(followRefresh()))

		require.NoError(t, p.Download(context.Background(), a, pipeline.WithInputHTML("A")))

		assert.Equal(t, "B", a.HTML)
	})

	t.Run("records failure of the refresh target", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {html: "A"}})
		p := &pipeline.Processor{
			Fetcher:       site.mock(),
			MetaRefresher: refreshTargets(map[string]string{"A": "/missing"}),
		}
		a := newArticle(t, newsprint.WithConfig(followRefresh()))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.FailedResponse, a.DownloadState)
		assert.Equal(t, "Status code 404 for url https://example.com/missing", a.DownloadErr)
	})

	t.Run("is ignored unless enabled", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {html: "A"}})
		p := &pipeline.Processor{
			Fetcher:       site.mock(),
			MetaRefresher: refreshTargets(map[string]string{"A": "/b"}),
		}
		a := newArticle(t)

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "A", a.HTML)
		assert.Equal(t, []string{storyURL}, site.requested())
	})
}

func TestProcessor_Download_ReadMore(t *testing.T) {
	t.Parallel()

	readMore := func(hrefs ...string) *mock.ReadMoreFinder {
		return &mock.ReadMoreFinder{
			ReadMoreLinksFn: func(string, string) ([]string, error) { return hrefs, nil },
		}
	}

	t.Run("follows link and updates url", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{
			storyURL:                         {html: "preview"},
			"https://example.com/full/story": {html: "full"},
		})
		p := &pipeline.Processor{Fetcher: site.mock(), ReadMore: readMore("/full/story")}
		a := newArticle(t, newsprint.WithReadMoreLink(`//a[@class="more"]`))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "full", a.HTML)
		assert.Equal(t, "https://example.com/full/story", a.URL)
		assert.Equal(t, storyURL, a.OriginalURL)
		assert.Equal(t, []string{"https://example.com/full/story"}, a.History)
	})

	t.Run("skips matches without href", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{
			storyURL:                {html: "preview"},
			"https://example.com/b": {html: "full"},
		})
		p := &pipeline.Processor{Fetcher: site.mock(), ReadMore: readMore("", "/b")}
		a := newArticle(t, newsprint.WithReadMoreLink("//a"))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "full", a.HTML)
	})

	t.Run("does not fall back past a failed link", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{
			storyURL:                {html: "preview"},
			"https://example.com/a": {html: "error", status: 500},
			"https://example.com/b": {html: "full"},
		})
		p := &pipeline.Processor{Fetcher: site.mock(), ReadMore: readMore("/a", "/b")}
		a := newArticle(t, newsprint.WithReadMoreLink("//a"))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, newsprint.Success, a.DownloadState)
		assert.Empty(t, a.DownloadErr)
		assert.Equal(t, "preview", a.HTML)
		assert.Equal(t, storyURL, a.URL)
		assert.Equal(t, []string{storyURL, "https://example.com/a"}, site.requested())
	})

	t.Run("keeps original content when selector fails", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {html: "preview"}})
		finder := &mock.ReadMoreFinder{
			ReadMoreLinksFn: func(string, string) ([]string, error) {
				return nil, newsprint.Errorf(newsprint.EINVALID, "invalid XPath")
			},
		}
		p := &pipeline.Processor{Fetcher: site.mock(), ReadMore: finder}
		a := newArticle(t, newsprint.WithReadMoreLink("//a["))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "preview", a.HTML)
	})

	t.Run("can be ignored", func(t *testing.T) {
		t.Parallel()

		site := newSiteFetcher(map[string]page{storyURL: {html: "preview"}})
		p := &pipeline.Processor{Fetcher: site.mock(), ReadMore: readMore("/full")}
		a := newArticle(t, newsprint.WithReadMoreLink("//a"))

		require.NoError(t, p.Download(context.Background(), a, pipeline.IgnoreReadMore()))

		assert.Equal(t, "preview", a.HTML)
		assert.Equal(t, []string{storyURL}, site.requested())
	})

	t.Run("follows the first link in the page", func(t *testing.T) {
		t.Parallel()

		const preview = `<html><body>
<div class="teaser"><p>Preview.</p><a class="more" href="/first">Read more</a></div>
<a class="more" href="/second">More</a>
</body></html>`
		site := newSiteFetcher(map[string]page{
			storyURL:                     {html: preview},
			"https://example.com/first":  {html: "first"},
			"https://example.com/second": {html: "second"},
		})
		p := &pipeline.Processor{Fetcher: site.mock(), ReadMore: htmlquery.NewReadMoreFinder()}
		a := newArticle(t, newsprint.WithReadMoreLink(`//a[@class="more"]`))

		require.NoError(t, p.Download(context.Background(), a))

		assert.Equal(t, "https://example.com/first", a.URL)
		assert.Equal(t, "first", a.HTML)
		assert.Equal(t, []string{storyURL, "https://example.com/first"}, site.requested())
	})
}
