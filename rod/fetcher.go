// Package rod provides a browser-based newsprint.Fetcher for article pages
// that only render their content with JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/newsprint"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements newsprint.Fetcher at compile time.
var _ newsprint.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	userAgent string
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single page load.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithManager uses an existing BrowserManager instead of launching one.
func WithManager(m *BrowserManager) Option {
	return func(f *Fetcher) {
		f.manager = m
	}
}

// NewFetcher creates a Fetcher backed by a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	if f.manager == nil {
		m, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		f.manager = m
	}
	return f, nil
}

// Fetch navigates to url and returns the rendered HTML together with the
// status code of the document response and the redirects it went through.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*newsprint.Response, error) {
	if f.closed.Load() {
		return nil, newsprint.Errorf(newsprint.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()
	defer f.manager.IncrementPageCount()

	page = page.Context(ctx)
	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return nil, err
		}
	}

	var status int
	var history []string
	waitDocument := page.EachEvent(
		func(e *proto.NetworkRequestWillBeSent) {
			if e.Type == proto.NetworkResourceTypeDocument && e.RedirectResponse != nil {
				history = append(history, e.RedirectResponse.URL)
			}
		},
		func(e *proto.NetworkResponseReceived) bool {
			if e.Type != proto.NetworkResourceTypeDocument {
				return false
			}
			status = e.Response.Status
			return true
		},
	)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	waitDocument()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return &newsprint.Response{
		HTML:       html,
		StatusCode: status,
		History:    history,
	}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
