package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mediahub/internal/domain/model"
	"mediahub/internal/infrastructure/metrics"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

// ListPublic returns every public record, newest first. Records sharing a
// timestamp are ordered by id so the result is stable.
func (l *MediaLister) ListPublic(ctx context.Context) ([]model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := l.db.Pool.Query(ctx,
		`SELECT id, object_key, filename, mime_type, size, is_public, created_at
		 FROM media
		 WHERE is_public = TRUE
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		metrics.RecordQuery("list_public", start, err)

		return nil, fmt.Errorf("list public media: %w", err)
	}

	media, err := pgx.CollectRows(rows, scanMedia)
	metrics.RecordQuery("list_public", start, err)
	if err != nil {
		return nil, fmt.Errorf("scan public media: %w", err)
	}

	if media == nil {
		media = []model.Media{}
	}

	return media, nil
}

func scanMedia(row pgx.CollectableRow) (model.Media, error) {
	var m model.Media
	err := row.Scan(&m.ID, &m.ObjectKey, &m.Filename, &m.MimeType, &m.Size, &m.IsPublic, &m.CreatedAt)

	return m, err
}
