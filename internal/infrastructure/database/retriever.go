package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository"
	"mediahub/internal/infrastructure/metrics"
)

type MediaRetriever struct {
	db *Database
}

func NewMediaRetriever(db *Database) *MediaRetriever {
	return &MediaRetriever{db: db}
}

func (r *MediaRetriever) GetByID(ctx context.Context, id string) (*model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	m := &model.Media{}
	start := time.Now()
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, object_key, filename, mime_type, size, is_public, created_at
		 FROM media WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.ObjectKey, &m.Filename, &m.MimeType, &m.Size, &m.IsPublic, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.RecordQuery("get_by_id", start, nil)

		return nil, repository.ErrMediaNotFound
	}
	metrics.RecordQuery("get_by_id", start, err)
	if err != nil {
		return nil, fmt.Errorf("get media by id: %w", err)
	}

	return m, nil
}

// ExistingObjectKeys reports which of keys are still referenced by a row.
func (r *MediaRetriever) ExistingObjectKeys(ctx context.Context, keys []string) (map[string]struct{}, error) {
	found := make(map[string]struct{}, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := r.db.Pool.Query(ctx, `SELECT object_key FROM media WHERE object_key = ANY($1)`, keys)
	if err != nil {
		metrics.RecordQuery("existing_object_keys", start, err)

		return nil, fmt.Errorf("query object keys: %w", err)
	}

	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	metrics.RecordQuery("existing_object_keys", start, err)
	if err != nil {
		return nil, fmt.Errorf("scan object keys: %w", err)
	}

	for _, k := range existing {
		found[k] = struct{}{}
	}

	return found, nil
}
