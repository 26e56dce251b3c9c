package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"mediahub/internal/domain/repository"
	"mediahub/internal/infrastructure/metrics"
)

type Streamer struct {
	client *Client
}

func NewStreamer(client *Client) *Streamer {
	return &Streamer{client: client}
}

// Stream opens the object for reading. GetObject is lazy; the Stat call
// surfaces a missing key before the caller writes any response headers.
// The read is bounded by ctx only.
func (s *Streamer) Stream(ctx context.Context, key string) (io.ReadCloser, error) {
	start := time.Now()

	obj, err := s.client.MinioClient.GetObject(ctx, s.client.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		metrics.RecordStorageOperation("get", start, err)

		return nil, fmt.Errorf("get object %q: %w", key, err)
	}

	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		metrics.RecordStorageOperation("get", start, err)

		if isNoSuchKey(err) {
			return nil, fmt.Errorf("get object %q: %w", key, repository.ErrObjectNotFound)
		}

		return nil, fmt.Errorf("get object %q: %w", key, err)
	}

	metrics.RecordStorageOperation("get", start, nil)

	return obj, nil
}
