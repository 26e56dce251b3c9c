package database

import (
	"context"

	"mediahub/internal/domain/model"
)

// Lister defines the interface for listing media records from the database.
type Lister interface {
	ListPublic(ctx context.Context) ([]model.Media, error)
}
