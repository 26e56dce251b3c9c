package usecase

import (
	"context"
	"errors"
	"fmt"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/repository"
	"mediahub/internal/domain/repository/broker"
	"mediahub/internal/domain/repository/database"
	"mediahub/internal/domain/repository/minio"
	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
)

// Deleter implements the Deleter abstraction for removing media.
type Deleter struct {
	events       broker.Publisher
	cleanup      broker.Publisher
	dbRetriever  database.Retriever
	dbRemover    database.Remover
	minioRemover minio.Remover
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(events, cleanup broker.Publisher, dbRetriever database.Retriever, dbRemover database.Remover,
	minioRemover minio.Remover,
) *Deleter {
	return &Deleter{
		events:       events,
		cleanup:      cleanup,
		dbRetriever:  dbRetriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
	}
}

// Delete removes the blob and then the record of id. It reports false with a
// nil error when there was nothing to delete. A blob that cannot be removed
// does not stop the record removal; it is queued for cleanup once the record
// is gone, so the cleaner never sees it still referenced.
func (d *Deleter) Delete(ctx context.Context, id string) (bool, error) {
	media, err := d.dbRetriever.GetByID(ctx, id)
	if errors.Is(err, repository.ErrMediaNotFound) {
		return false, nil
	}
	if err != nil {
		metrics.RecordDelete(err)

		return false, fmt.Errorf("look up media: %w", err)
	}

	blobErr := d.minioRemover.Remove(ctx, media.ObjectKey)
	if blobErr != nil {
		logger.Error("failed to remove blob, deleting record anyway", "id", id, "key", media.ObjectKey, "err", blobErr)
	}

	err = d.dbRemover.RemoveByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrMediaNotFound) {
		metrics.RecordDelete(err)

		return false, fmt.Errorf("remove media record: %w", err)
	}

	if blobErr != nil {
		enqueueCleanup(ctx, d.cleanup, media.ObjectKey)
	}

	if err != nil {
		return false, nil
	}

	publishEvent(ctx, d.events, entity.EventMediaDeleted, media)
	metrics.RecordDelete(nil)
	logger.Info("media deleted", "id", id, "key", media.ObjectKey)

	return true, nil
}
