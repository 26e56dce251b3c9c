package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"mediahub/internal/domain/entity"
	"mediahub/internal/infrastructure/metrics"
)

type Lister struct {
	client *Client
	cfg    *ListerConfig
}

func NewLister(client *Client, cfg *ListerConfig) *Lister {
	return &Lister{
		client: client,
		cfg:    cfg,
	}
}

// ListObjects returns every object in the bucket last modified before
// olderThan. The bucket is flat, so the listing is recursive with no prefix.
func (l *Lister) ListObjects(ctx context.Context, olderThan time.Time) ([]entity.ObjectInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(l.cfg.Timeout)*time.Millisecond)
	defer cancel()

	start := time.Now()
	objects := make([]entity.ObjectInfo, 0)

	for obj := range l.client.MinioClient.ListObjects(ctx, l.client.Bucket, minio.ListObjectsOptions{
		Recursive: true,
	}) {
		if obj.Err != nil {
			metrics.RecordStorageOperation("list", start, obj.Err)

			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}

		if obj.LastModified.Before(olderThan) {
			objects = append(objects, toObjectInfo(obj))
		}
	}

	metrics.RecordStorageOperation("list", start, nil)

	return objects, nil
}
