package minio

import (
	"context"
	"io"
)

// Streamer opens a forward-only reader over a stored blob. The caller must
// close it.
type Streamer interface {
	Stream(ctx context.Context, key string) (io.ReadCloser, error)
}
