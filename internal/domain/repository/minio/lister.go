package minio

import (
	"context"
	"time"

	"mediahub/internal/domain/entity"
)

// Lister enumerates blobs last modified before olderThan.
type Lister interface {
	ListObjects(ctx context.Context, olderThan time.Time) ([]entity.ObjectInfo, error)
}
