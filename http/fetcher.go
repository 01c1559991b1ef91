// Package http provides an HTTP-based implementation of newsprint.Fetcher
// for downloading articles from sites that don't require JavaScript rendering.
package http

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/newsprint"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = newsprint.DefaultTransportTimeout

// Ensure Fetcher implements newsprint.Fetcher at compile time.
var _ newsprint.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	transport newsprint.TransportConfig
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithTransport applies request parameters: headers, cookies, basic auth,
// redirect policy, proxy, TLS verification and client certificate. A non-zero
// timeout in cfg replaces the fetcher timeout.
func WithTransport(cfg newsprint.TransportConfig) Option {
	return func(f *Fetcher) {
		f.transport = cfg
		if cfg.Timeout > 0 {
			f.timeout = cfg.Timeout
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		transport: newsprint.TransportConfig{
			UserAgent:      newsprint.DefaultUserAgent,
			AllowRedirects: true,
		},
	}
	for _, opt := range opts {
		opt(f)
	}

	rt, err := f.roundTripper()
	if err != nil {
		return nil, err
	}
	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: rt,
	}

	return f, nil
}

func (f *Fetcher) roundTripper() (http.RoundTripper, error) {
	cfg := f.transport
	if cfg.Proxy == "" && !cfg.InsecureSkipVerify && cfg.CertFile == "" {
		return http.DefaultTransport, nil
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		proxy, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, newsprint.Errorf(newsprint.ECONFIG, "invalid proxy URL: %s", cfg.Proxy)
		}
		t.Proxy = http.ProxyURL(proxy)
	}
	if cfg.InsecureSkipVerify || cfg.CertFile != "" {
		tlsConfig := &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}
		if cfg.CertFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
			if err != nil {
				return nil, newsprint.Errorf(newsprint.ECONFIG, "load client certificate: %v", err)
			}
			tlsConfig.Certificates = []tls.Certificate{cert}
		}
		t.TLSClientConfig = tlsConfig
	}
	return t, nil
}

// Fetch retrieves the HTML content from the given URL. Responses with a
// failing status code are returned with their body so that callers can
// inspect them.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*newsprint.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	f.decorate(req)

	var history []string
	client := *f.client
	client.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
		if !f.transport.AllowRedirects {
			return http.ErrUseLastResponse
		}
		if len(via) >= 10 {
			return http.ErrUseLastResponse
		}
		history = append(history, via[len(via)-1].URL.String())
		return nil
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	html, err := decode(b, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	return &newsprint.Response{
		HTML:       html,
		StatusCode: resp.StatusCode,
		History:    history,
	}, nil
}

// decode converts the body to UTF-8. Undeclared encodings are only guessed
// when the body is not already valid UTF-8.
func decode(b []byte, contentType string) (string, error) {
	e, _, certain := charset.DetermineEncoding(b, contentType)
	if !certain && utf8.Valid(b) {
		return string(b), nil
	}
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (f *Fetcher) decorate(req *http.Request) {
	cfg := f.transport
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Cookie") == "" {
		for name, value := range cfg.Cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}
	if cfg.Username != "" || cfg.Password != "" {
		req.SetBasicAuth(cfg.Username, cfg.Password)
	}
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
