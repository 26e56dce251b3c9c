package abstraction

import (
	"context"

	"mediahub/internal/domain/model"
)

type Lister interface {
	ListPublic(ctx context.Context) ([]model.Media, error)
}
