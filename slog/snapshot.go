package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsprint"
)

// Ensure LoggingSnapshotService implements newsprint.SnapshotService.
var _ newsprint.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with logging.
type LoggingSnapshotService struct {
	next   newsprint.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next newsprint.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snap *newsprint.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create snapshot",
			"url", snap.URL,
			"id", snap.ID,
			"dom", snap.DOM != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snap)
}

// FindSnapshotByID delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) FindSnapshotByID(ctx context.Context, id string) (snap *newsprint.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshotByID(ctx, id)
}

// FindLatestSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) FindLatestSnapshot(ctx context.Context, url string) (snap *newsprint.Snapshot, err error) {
	defer func(begin time.Time) {
		var id string
		if snap != nil {
			id = snap.ID
		}
		s.logger.Debug("find latest snapshot",
			"url", url,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLatestSnapshot(ctx, url)
}

// FindSnapshots delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter newsprint.SnapshotFilter) (snaps []*newsprint.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find snapshots",
			"count", len(snaps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshots(ctx, filter)
}

// DeleteSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) DeleteSnapshot(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshot(ctx, id)
}
