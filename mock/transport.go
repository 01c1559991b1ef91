package mock

import (
	"context"

	"github.com/fwojciec/newsprint"
)

var (
	_ newsprint.Fetcher       = (*Fetcher)(nil)
	_ newsprint.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of newsprint.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*newsprint.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*newsprint.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of newsprint.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
