package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/mock"
	npslog "github.com/fwojciec/newsprint/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSnapshotService(t *testing.T) {
	t.Parallel()

	t.Run("logs created snapshot ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, s *newsprint.Snapshot) error {
				s.ID = "snap-1"
				return nil
			},
		}

		svc := npslog.NewLoggingSnapshotService(inner, logger)
		err := svc.CreateSnapshot(context.Background(), &newsprint.Snapshot{URL: "https://example.com/news/a"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create snapshot")
		assert.Contains(t, output, "id=snap-1")
		assert.Contains(t, output, "dom=false")
	})

	t.Run("logs lookup misses", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.SnapshotService{
			FindLatestSnapshotFn: func(context.Context, string) (*newsprint.Snapshot, error) {
				return nil, newsprint.Errorf(newsprint.ENOTFOUND, "no snapshot")
			},
		}

		svc := npslog.NewLoggingSnapshotService(inner, logger)
		_, err := svc.FindLatestSnapshot(context.Background(), "https://example.com/news/a")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "find latest snapshot")
		assert.Contains(t, output, "no snapshot")
	})

	t.Run("delegates remaining calls", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		deleted := ""
		inner := &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*newsprint.Snapshot, error) {
				return &newsprint.Snapshot{ID: id}, nil
			},
			FindSnapshotsFn: func(context.Context, newsprint.SnapshotFilter) ([]*newsprint.Snapshot, error) {
				return []*newsprint.Snapshot{{ID: "a"}, {ID: "b"}}, nil
			},
			DeleteSnapshotFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		svc := npslog.NewLoggingSnapshotService(inner, logger)
		ctx := context.Background()

		found, err := svc.FindSnapshotByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "a", found.ID)

		all, err := svc.FindSnapshots(ctx, newsprint.SnapshotFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		require.NoError(t, svc.DeleteSnapshot(ctx, "b"))
		assert.Equal(t, "b", deleted)
		assert.Contains(t, buf.String(), "delete snapshot")
	})
}
