// Package redis implements a snapshot cache backed by Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fwojciec/newsprint"
	"github.com/redis/go-redis/v9"
)

// Ensure SnapshotCache implements newsprint.SnapshotCache.
var _ newsprint.SnapshotCache = (*SnapshotCache)(nil)

// DefaultKeyPrefix is prepended to the article URL to form the cache key.
const DefaultKeyPrefix = "newsprint:snapshot:"

// SnapshotCache stores the latest snapshot of each article URL as JSON.
type SnapshotCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Option configures a SnapshotCache.
type Option func(*SnapshotCache)

// WithTTL sets how long cached snapshots live. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *SnapshotCache) {
		c.ttl = ttl
	}
}

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *SnapshotCache) {
		c.prefix = prefix
	}
}

// NewSnapshotCache creates a cache on top of an existing client.
func NewSnapshotCache(client *redis.Client, opts ...Option) *SnapshotCache {
	c := &SnapshotCache{
		client: client,
		prefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open connects to the Redis server described by rawURL
// (e.g. redis://localhost:6379/0).
func Open(rawURL string, opts ...Option) (*SnapshotCache, error) {
	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, newsprint.Errorf(newsprint.ECONFIG, "invalid redis URL: %v", err)
	}
	return NewSnapshotCache(redis.NewClient(redisOpts), opts...), nil
}

// Close closes the underlying client.
func (c *SnapshotCache) Close() error {
	return c.client.Close()
}

// GetSnapshot returns the cached snapshot for url, or ENOTFOUND on a miss.
func (c *SnapshotCache) GetSnapshot(ctx context.Context, url string) (*newsprint.Snapshot, error) {
	data, err := c.client.Get(ctx, c.key(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, newsprint.Errorf(newsprint.ENOTFOUND, "no cached snapshot for %s", url)
	} else if err != nil {
		return nil, err
	}

	var s newsprint.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, newsprint.Errorf(newsprint.EINTERNAL, "decode cached snapshot: %v", err)
	}
	return &s, nil
}

// SetSnapshot caches s under its URL, replacing any previous entry.
func (c *SnapshotCache) SetSnapshot(ctx context.Context, s *newsprint.Snapshot) error {
	if s == nil {
		return newsprint.Errorf(newsprint.EINVALID, "snapshot required")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(s.URL), data, c.ttl).Err()
}

func (c *SnapshotCache) key(url string) string {
	return c.prefix + url
}
