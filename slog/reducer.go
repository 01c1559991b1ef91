package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/newsprint"
)

// Ensure LoggingReducer implements newsprint.Reducer.
var _ newsprint.Reducer = (*LoggingReducer)(nil)

// LoggingReducer wraps a Reducer with debug logging.
type LoggingReducer struct {
	next   newsprint.Reducer
	logger *slog.Logger
}

// NewLoggingReducer creates a new LoggingReducer.
func NewLoggingReducer(next newsprint.Reducer, logger *slog.Logger) *LoggingReducer {
	return &LoggingReducer{next: next, logger: logger}
}

// Reduce delegates to the wrapped reducer and logs how much HTML was kept.
func (r *LoggingReducer) Reduce(url, html string) (reduced string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("reduce",
			"url", url,
			"in_bytes", len(html),
			"out_bytes", len(reduced),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Reduce(url, html)
}
