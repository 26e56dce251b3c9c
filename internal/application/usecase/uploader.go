package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository/broker"
	"mediahub/internal/domain/repository/database"
	"mediahub/internal/domain/repository/minio"
	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
	"mediahub/pkg/utils"
)

type Uploader struct {
	events        broker.Publisher
	cleanup       broker.Publisher
	writer        database.Writer
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	newKey        func() string
}

func NewUploader(events, cleanup broker.Publisher, writer database.Writer,
	minioUploader minio.Uploader, minioRemover minio.Remover,
) *Uploader {
	return &Uploader{
		events:        events,
		cleanup:       cleanup,
		writer:        writer,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		newKey:        uuid.NewString,
	}
}

// Upload writes the blob first and the metadata row second. When the row
// cannot be written the blob is removed again; if that fails as well the key
// goes to the cleanup queue.
func (u *Uploader) Upload(ctx context.Context, in entity.UploadInput) (*model.Media, error) {
	key := ObjectKey(u.newKey(), in.Filename)

	if err := u.minioUploader.Put(ctx, key, in.Body, in.Size, in.MimeType); err != nil {
		metrics.RecordUpload(err, 0)

		return nil, fmt.Errorf("store blob: %w", err)
	}

	media, err := u.writer.Create(ctx, model.NewMedia{
		ObjectKey: key,
		Filename:  in.Filename,
		MimeType:  in.MimeType,
		Size:      in.Size,
		IsPublic:  true,
	})
	if err != nil {
		metrics.RecordUpload(err, 0)
		logger.Error("failed to write media record, removing blob", "key", key, "err", err)

		if rmErr := u.minioRemover.Remove(context.WithoutCancel(ctx), key); rmErr != nil {
			logger.Error("failed to remove blob after record write failed", "key", key, "err", rmErr)
			enqueueCleanup(ctx, u.cleanup, key)
		}

		return nil, fmt.Errorf("write media record: %w", err)
	}

	publishEvent(ctx, u.events, entity.EventMediaUploaded, media)
	metrics.RecordUpload(nil, in.Size)
	logger.Info("media uploaded", "id", media.ID, "key", key, "size", in.Size)

	return media, nil
}

// ObjectKey derives the storage key for a new upload: id, plus the lowercased
// extension of filename when it has one.
func ObjectKey(id, filename string) string {
	if ext := utils.FileExtension(filename); ext != "" {
		return id + "." + ext
	}

	return id
}
