// Package slog provides logging decorators for newsprint services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsprint"
)

// Ensure LoggingFetcher implements newsprint.Fetcher.
var _ newsprint.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every download. Transport errors and failing status
// codes are logged at warn level, naming the protection vendor when the
// body carries a challenge page.
type LoggingFetcher struct {
	next   newsprint.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newsprint.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *newsprint.Response, err error) {
	defer func(begin time.Time) {
		elapsed := time.Since(begin)
		switch {
		case err != nil:
			f.logger.Warn("fetch failed", "url", url, "duration", elapsed, "err", err)
		case resp.StatusCode >= 400:
			attrs := []any{"url", url, "status", resp.StatusCode, "bytes", len(resp.HTML), "duration", elapsed}
			if vendor := newsprint.DetectProtection(resp.HTML); vendor != "" {
				attrs = append(attrs, "protection", string(vendor))
			}
			f.logger.Warn("fetch rejected", attrs...)
		default:
			f.logger.Info("fetch",
				"url", url,
				"status", resp.StatusCode,
				"bytes", len(resp.HTML),
				"redirects", len(resp.History),
				"duration", elapsed,
			)
		}
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
