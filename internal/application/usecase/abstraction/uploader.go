package abstraction

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, in entity.UploadInput) (*model.Media, error)
}
