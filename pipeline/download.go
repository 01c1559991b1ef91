package pipeline

import (
	"context"
	"errors"
	"net/url"

	"github.com/fwojciec/newsprint"
)

// DownloadOption configures a single Download call.
type DownloadOption func(*downloadOptions)

type downloadOptions struct {
	input          *string
	title          *string
	ignoreReadMore bool
}

// WithInputHTML uses html as the page content instead of fetching the
// article URL. Meta refresh and read-more links are still followed.
func WithInputHTML(html string) DownloadOption {
	return func(o *downloadOptions) {
		o.input = &html
	}
}

// WithTitle forces the article title once the download succeeds.
func WithTitle(title string) DownloadOption {
	return func(o *downloadOptions) {
		o.title = &title
	}
}

// IgnoreReadMore skips the article's read-more link.
func IgnoreReadMore() DownloadOption {
	return func(o *downloadOptions) {
		o.ignoreReadMore = true
	}
}

// Download resolves the article HTML. Transport failures and failing status
// codes are recorded on a as FailedResponse with a message and are not
// returned; the error result is reserved for missing collaborators. Download
// may be called again after a failure.
func (p *Processor) Download(ctx context.Context, a *newsprint.Article, opts ...DownloadOption) error {
	var o downloadOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.input == nil && p.Fetcher == nil && p.Files == nil {
		return newsprint.Errorf(newsprint.ECONFIG, "no fetcher configured")
	}

	html, ok := p.resolve(ctx, a, a.URL, o.input, o.ignoreReadMore, 0)
	if !ok {
		p.logger().Debug("download failed", "url", a.URL, "err", a.DownloadErr)
		return nil
	}

	a.HTML = html
	a.DownloadState = newsprint.Success
	a.DownloadErr = ""
	if o.title != nil {
		a.Title = a.Config.ClipTitle(*o.title)
	}
	return nil
}

// resolve returns the HTML for pageURL, following at most one meta refresh
// hop and the first usable read-more link.
func (p *Processor) resolve(ctx context.Context, a *newsprint.Article, pageURL string, input *string, ignoreReadMore bool, depth int) (string, bool) {
	var html string
	if input != nil {
		html = *input
	} else {
		resp, ok := p.fetchRecorded(ctx, a, pageURL)
		if !ok {
			return "", false
		}
		html = resp.HTML
	}

	if a.Config.FollowMetaRefresh && p.MetaRefresher != nil && depth < 1 {
		if target := p.MetaRefresher.MetaRefreshURL(html); target != "" {
			next, err := newsprint.PrepareURL(target, pageURL)
			if err == nil {
				p.logger().Debug("following meta refresh", "url", pageURL, "target", next)
				return p.resolve(ctx, a, next, nil, ignoreReadMore, depth+1)
			}
		}
	}

	if !ignoreReadMore && a.ReadMoreLink != "" && p.ReadMore != nil {
		html = p.followReadMore(ctx, a, html)
	}
	return html, true
}

// followReadMore fetches the first read-more link carrying an href. Only
// that link is attempted; on failure the original HTML and URL are kept.
func (p *Processor) followReadMore(ctx context.Context, a *newsprint.Article, html string) string {
	hrefs, err := p.ReadMore.ReadMoreLinks(html, a.ReadMoreLink)
	if err != nil {
		p.logger().Warn("read more selector failed", "url", a.URL, "expr", a.ReadMoreLink, "err", err)
		return html
	}

	for _, href := range hrefs {
		if href == "" {
			continue
		}
		p.logger().Info("found read more link", "url", a.URL, "link", href)

		target, err := newsprint.PrepareURL(href, a.URL)
		if err != nil {
			p.logger().Info("failed to download read more link", "link", href, "err", err)
			return html
		}
		resp, err := p.fetch(ctx, target)
		if err != nil || resp.StatusCode >= 400 {
			p.logger().Info("failed to download read more link, keeping original content", "link", target)
			return html
		}

		a.URL = target
		a.History = resp.History
		p.logger().Info("downloaded read more link", "url", a.URL)
		return resp.HTML
	}
	return html
}

// fetchRecorded fetches rawURL and records the redirect history. Failures
// are recorded on a.
func (p *Processor) fetchRecorded(ctx context.Context, a *newsprint.Article, rawURL string) (*newsprint.Response, bool) {
	resp, err := p.fetch(ctx, rawURL)
	if err != nil {
		a.DownloadState = newsprint.FailedResponse
		a.DownloadErr = failureText(err)
		return nil, false
	}

	a.History = resp.History
	if resp.StatusCode >= 400 {
		a.DownloadState = newsprint.FailedResponse
		a.DownloadErr = newsprint.FailureMessage(resp.HTML, resp.StatusCode, rawURL)
		return nil, false
	}
	return resp, true
}

func (p *Processor) fetch(ctx context.Context, rawURL string) (*newsprint.Response, error) {
	fetcher := p.Fetcher
	if u, err := url.Parse(rawURL); err == nil && u.Scheme == "file" {
		fetcher = p.Files
	}
	if fetcher == nil {
		return nil, newsprint.Errorf(newsprint.ECONFIG, "no fetcher for %s", rawURL)
	}
	return fetcher.Fetch(ctx, rawURL)
}

// failureText returns the message recorded for a transport error.
func failureText(err error) string {
	var e *newsprint.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
