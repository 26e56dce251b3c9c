package database

import (
	"context"
	"fmt"
	"time"

	"mediahub/internal/domain/repository"
	"mediahub/internal/infrastructure/metrics"
)

type MediaRemover struct {
	db *Database
}

func NewMediaRemover(db *Database) *MediaRemover {
	return &MediaRemover{db: db}
}

func (r *MediaRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	start := time.Now()
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	metrics.RecordQuery("remove_by_id", start, err)
	if err != nil {
		return fmt.Errorf("remove media: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}
