package newsprint

import "context"

// Response is the result of fetching a URL.
type Response struct {
	HTML       string
	StatusCode int

	// History lists the URLs visited while following redirects, in order.
	History []string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the body and status code for url. A failing status code
	// is reported in the Response, not as an error; errors are reserved for
	// transport failures.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases transport resources.
	Close() error
}
