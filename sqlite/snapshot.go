package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/newsprint"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsprint.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements newsprint.SnapshotService using SQLite.
// The article and DOM state are stored as JSON documents.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

const snapshotColumns = "id, url, content_hash, article, dom, created_at"

// CreateSnapshot stores s, assigning its ID, creation time and content hash.
func (svc *SnapshotService) CreateSnapshot(ctx context.Context, s *newsprint.Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	article, err := json.Marshal(s.Article)
	if err != nil {
		return fmt.Errorf("failed to encode article: %w", err)
	}
	var dom string
	if s.DOM != nil {
		b, err := json.Marshal(s.DOM)
		if err != nil {
			return fmt.Errorf("failed to encode dom: %w", err)
		}
		dom = string(b)
	}

	s.ID = uuid.New().String()
	s.CreatedAt = svc.db.Now().UTC()
	s.ContentHash = hashContent(s.Article.HTML)

	_, err = svc.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, url, title, content_hash, article, dom, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.URL, s.Article.Title, s.ContentHash, string(article), dom, s.CreatedAt.Format(timeFormat))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (svc *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*newsprint.Snapshot, error) {
	row := svc.db.QueryRowContext(ctx, "SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id)
	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsprint.Errorf(newsprint.ENOTFOUND, "snapshot not found")
	}
	return s, err
}

// FindLatestSnapshot retrieves the most recent snapshot for url.
func (svc *SnapshotService) FindLatestSnapshot(ctx context.Context, url string) (*newsprint.Snapshot, error) {
	snapshots, err := svc.FindSnapshots(ctx, newsprint.SnapshotFilter{URL: &url, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, newsprint.Errorf(newsprint.ENOTFOUND, "no snapshot for %s", url)
	}
	return snapshots[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (svc *SnapshotService) FindSnapshots(ctx context.Context, filter newsprint.SnapshotFilter) ([]*newsprint.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + snapshotColumns + " FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := svc.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*newsprint.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (svc *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := svc.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsprint.Errorf(newsprint.ENOTFOUND, "snapshot not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*newsprint.Snapshot, error) {
	var s newsprint.Snapshot
	var article, dom, createdAt string

	if err := row.Scan(&s.ID, &s.URL, &s.ContentHash, &article, &dom, &createdAt); err != nil {
		return nil, err
	}

	s.Article = &newsprint.Article{}
	if err := json.Unmarshal([]byte(article), s.Article); err != nil {
		return nil, fmt.Errorf("failed to decode article: %w", err)
	}
	if dom != "" {
		s.DOM = &newsprint.DOMSnapshot{}
		if err := json.Unmarshal([]byte(dom), s.DOM); err != nil {
			return nil, fmt.Errorf("failed to decode dom: %w", err)
		}
	}

	var err error
	s.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &s, nil
}
