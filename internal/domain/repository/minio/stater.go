package minio

import (
	"context"

	"mediahub/internal/domain/entity"
)

type Stater interface {
	Stat(ctx context.Context, key string) entity.ObjectStat
}
