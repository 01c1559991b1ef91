package mock

import (
	"context"

	"github.com/fwojciec/newsprint"
)

var (
	_ newsprint.SnapshotService = (*SnapshotService)(nil)
	_ newsprint.SnapshotCache   = (*SnapshotCache)(nil)
	_ newsprint.ArticleWriter   = (*ArticleWriter)(nil)
)

// SnapshotService is a mock implementation of newsprint.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn     func(ctx context.Context, s *newsprint.Snapshot) error
	FindSnapshotByIDFn   func(ctx context.Context, id string) (*newsprint.Snapshot, error)
	FindLatestSnapshotFn func(ctx context.Context, url string) (*newsprint.Snapshot, error)
	FindSnapshotsFn      func(ctx context.Context, filter newsprint.SnapshotFilter) ([]*newsprint.Snapshot, error)
	DeleteSnapshotFn     func(ctx context.Context, id string) error
}

func (m *SnapshotService) CreateSnapshot(ctx context.Context, s *newsprint.Snapshot) error {
	return m.CreateSnapshotFn(ctx, s)
}

func (m *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*newsprint.Snapshot, error) {
	return m.FindSnapshotByIDFn(ctx, id)
}

func (m *SnapshotService) FindLatestSnapshot(ctx context.Context, url string) (*newsprint.Snapshot, error) {
	return m.FindLatestSnapshotFn(ctx, url)
}

func (m *SnapshotService) FindSnapshots(ctx context.Context, filter newsprint.SnapshotFilter) ([]*newsprint.Snapshot, error) {
	return m.FindSnapshotsFn(ctx, filter)
}

func (m *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return m.DeleteSnapshotFn(ctx, id)
}

// SnapshotCache is a mock implementation of newsprint.SnapshotCache.
type SnapshotCache struct {
	GetSnapshotFn func(ctx context.Context, url string) (*newsprint.Snapshot, error)
	SetSnapshotFn func(ctx context.Context, s *newsprint.Snapshot) error
}

func (m *SnapshotCache) GetSnapshot(ctx context.Context, url string) (*newsprint.Snapshot, error) {
	return m.GetSnapshotFn(ctx, url)
}

func (m *SnapshotCache) SetSnapshot(ctx context.Context, s *newsprint.Snapshot) error {
	return m.SetSnapshotFn(ctx, s)
}

// ArticleWriter is a mock implementation of newsprint.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, a *newsprint.Article) error
}

func (m *ArticleWriter) WriteArticle(ctx context.Context, a *newsprint.Article) error {
	return m.WriteArticleFn(ctx, a)
}
