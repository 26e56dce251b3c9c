package abstraction

import (
	"context"

	"mediahub/internal/domain/entity"
)

type Sweeper interface {
	Sweep(ctx context.Context) (entity.SweepReport, error)
}
