package pipeline

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/newsprint"
	"golang.org/x/time/rate"
)

var _ newsprint.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same news site with one token
// bucket per site. Hosts are compared without port, case or a leading
// "www.", so example.com and www.example.com:443 share a bucket.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter allows rps requests per second to each site, without
// bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until host may be requested again, or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	key := siteKey(host)

	d.mu.Lock()
	bucket, ok := d.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(d.limit, 1)
		d.buckets[key] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}

func siteKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}
