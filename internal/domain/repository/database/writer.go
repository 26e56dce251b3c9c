package database

import (
	"context"

	"mediahub/internal/domain/model"
)

type Writer interface {
	Create(ctx context.Context, media model.NewMedia) (*model.Media, error)
}
