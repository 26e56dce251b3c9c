package minio

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"mediahub/pkg/logger"
)

const codeNoSuchKey = "NoSuchKey"

// Client owns the long-lived MinIO handle shared by every adapter.
type Client struct {
	MinioClient *minio.Client
	Bucket      string
}

func New(cfg ClientConfig) (*Client, error) {
	endpoint := net.JoinHostPort(cfg.Endpoint, strconv.Itoa(cfg.Port))

	logger.Info("connecting to minio", "endpoint", endpoint, "ssl", cfg.UseSSL)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Client{
		MinioClient: client,
		Bucket:      cfg.Bucket,
	}, nil
}

// EnsureBucket creates the bucket when it is missing. The check and the
// create are two calls, so two instances starting together may race; the
// loser gets a BucketAlreadyOwnedByYou error which is treated as success.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.MinioClient.BucketExists(ctx, c.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", c.Bucket, err)
	}

	if exists {
		logger.Info("bucket already exists", "bucket", c.Bucket)

		return nil
	}

	err = c.MinioClient.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		if code := minio.ToErrorResponse(err).Code; code == "BucketAlreadyOwnedByYou" || code == "BucketAlreadyExists" {
			logger.Info("bucket already exists", "bucket", c.Bucket)

			return nil
		}

		return fmt.Errorf("create bucket %q: %w", c.Bucket, err)
	}

	logger.Info("bucket created", "bucket", c.Bucket)

	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == codeNoSuchKey
}
