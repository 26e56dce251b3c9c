package abstraction

import (
	"context"
	"io"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
)

// Getter defines the interface for reading media records and their bytes.
type Getter interface {
	FindByID(ctx context.Context, id string) (*model.Media, error)
	FileStream(ctx context.Context, objectKey string) (io.ReadCloser, error)
	Stat(ctx context.Context, id string) (*model.Media, entity.ObjectStat, error)
}
