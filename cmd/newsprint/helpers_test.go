package main_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newsprint"
	main "github.com/fwojciec/newsprint/cmd/newsprint"
	"github.com/fwojciec/newsprint/mock"
	"github.com/fwojciec/newsprint/pipeline"
)

// storyPage renders a news page with enough body text to pass the validity
// rules.
func storyPage(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<html lang="en"><head><title>%s</title>`, title)
	b.WriteString(`<meta property="og:type" content="article">`)
	b.WriteString(`<meta name="author" content="Jane Reporter">`)
	b.WriteString(`</head><body><nav><a href="/">Home</a> <a href="/world">World</a></nav><article>`)
	fmt.Fprintf(&b, "<h1>%s</h1>", title)
	for i := range 40 {
		fmt.Fprintf(&b, "<p>The city council met on Tuesday evening to debate budget item number %d in detail.</p>", i)
	}
	b.WriteString(`</article><footer>Copyright Example News</footer></body></html>`)
	return b.String()
}

// pages returns a Fetcher serving html by URL. Unknown URLs answer 404.
func pages(html map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*newsprint.Response, error) {
			body, ok := html[url]
			if !ok {
				return &newsprint.Response{HTML: "not found", StatusCode: 404, History: []string{url}}, nil
			}
			return &newsprint.Response{HTML: body, StatusCode: 200, History: []string{url}}, nil
		},
		CloseFn: func() error { return nil },
	}
}

// testBatch returns a Batch over the default extraction stack.
func testBatch(fetcher newsprint.Fetcher) *pipeline.Batch {
	return &pipeline.Batch{
		Processor: main.NewProcessor(fetcher, "readability", nil),
		Config:    newsprint.DefaultConfig(),
	}
}
