package minio

import (
	"context"
	"io"
)

type Uploader interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
}
