package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

// Put stores body under key. An existing object with the same key is
// overwritten.
func (u *Uploader) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := u.client.MinioClient.PutObject(ctx, u.client.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	metrics.RecordStorageOperation("put", start, err)
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return fmt.Errorf("put object %q: %w", key, err)
	}

	logger.Debug("uploaded object", "key", key, "size", size)

	return nil
}
