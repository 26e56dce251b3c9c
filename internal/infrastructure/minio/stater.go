package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"mediahub/internal/domain/entity"
	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
)

type Stater struct {
	client *Client
	cfg    *StaterConfig
}

func NewStater(client *Client, cfg *StaterConfig) *Stater {
	return &Stater{
		client: client,
		cfg:    cfg,
	}
}

// Stat never fails: a missing key is StatNotFound and any other failure is
// StatLookupError carrying the cause.
func (s *Stater) Stat(ctx context.Context, key string) entity.ObjectStat {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	start := time.Now()
	info, err := s.client.MinioClient.StatObject(ctx, s.client.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			metrics.RecordStorageOperation("stat", start, nil)

			return entity.NotFound()
		}

		metrics.RecordStorageOperation("stat", start, err)
		logger.Warn("object stat failed", "key", key, "err", err)

		return entity.LookupError(err)
	}

	metrics.RecordStorageOperation("stat", start, nil)

	return entity.Found(toObjectInfo(info))
}

func toObjectInfo(info minio.ObjectInfo) entity.ObjectInfo {
	return entity.ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}
}
