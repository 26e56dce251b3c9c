package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
)

type Remover struct {
	client *Client
	cfg    *RemoverConfig
}

func NewRemover(client *Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		client: client,
		cfg:    cfg,
	}
}

// Remove deletes the object stored under key. Removing a key that does not
// exist succeeds.
func (r *Remover) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.client.MinioClient.RemoveObject(ctx, r.client.Bucket, key, minio.RemoveObjectOptions{})
	metrics.RecordStorageOperation("remove", start, err)
	if err != nil {
		logger.Error("failed to remove object", "key", key, "err", err)

		return fmt.Errorf("remove object %q: %w", key, err)
	}

	logger.Debug("removed object", "key", key)

	return nil
}
