package database

import (
	"context"

	"mediahub/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Media, error)
	ExistingObjectKeys(ctx context.Context, keys []string) (map[string]struct{}, error)
}
