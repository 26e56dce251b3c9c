package database

import (
	"context"
	"fmt"
	"time"

	"mediahub/internal/domain/model"
	"mediahub/internal/infrastructure/metrics"
)

type MediaWriter struct {
	db *Database
}

func NewMediaWriter(db *Database) *MediaWriter {
	return &MediaWriter{db: db}
}

func (w *MediaWriter) Create(ctx context.Context, media model.NewMedia) (*model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	m := &model.Media{}
	start := time.Now()
	err := w.db.Pool.QueryRow(ctx,
		`INSERT INTO media (object_key, filename, mime_type, size, is_public)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, object_key, filename, mime_type, size, is_public, created_at`,
		media.ObjectKey, media.Filename, media.MimeType, media.Size, media.IsPublic,
	).Scan(&m.ID, &m.ObjectKey, &m.Filename, &m.MimeType, &m.Size, &m.IsPublic, &m.CreatedAt)
	metrics.RecordQuery("create", start, err)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}

	return m, nil
}
