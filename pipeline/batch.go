package pipeline

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of articles built at once by a Batch.
const DefaultConcurrency = 4

// Batch builds many articles concurrently. Each article is processed
// sequentially on its own; articles share only the read-only Config.
type Batch struct {
	Processor   *Processor
	Config      *newsprint.Config
	Limiter     newsprint.DomainLimiter
	Concurrency int

	// Options are applied to every Download.
	Options []DownloadOption
}

// Result is the outcome of building one URL.
type Result struct {
	URL     string
	Article *newsprint.Article
	Err     error
}

// ProgressFunc receives a result as soon as its article is finished.
type ProgressFunc func(completed, total int, r Result)

// Build builds every distinct URL in urls and returns the results in input
// order. Repeated URLs are built once. Failures of individual articles are
// reported in their Result; the error return is reserved for cancellation.
func (b *Batch) Build(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	urls = bloom.Dedup(urls)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.build(gctx, u)
			if progress != nil {
				progress(int(completed.Add(1)), len(urls), results[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (b *Batch) build(ctx context.Context, rawURL string) Result {
	r := Result{URL: rawURL}

	var opts []newsprint.ArticleOption
	if b.Config != nil {
		opts = append(opts, newsprint.WithConfig(b.Config))
	}
	a, err := newsprint.NewArticle(rawURL, opts...)
	if err != nil {
		r.Err = err
		return r
	}
	r.Article = a

	if b.Limiter != nil {
		if u, err := url.Parse(a.URL); err == nil && u.Host != "" {
			if err := b.Limiter.Wait(ctx, u.Host); err != nil {
				r.Err = err
				return r
			}
		}
	}

	r.Err = b.Processor.Build(ctx, a, b.Options...)
	return r
}
