package usecase

import (
	"context"

	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository/database"
)

type Lister struct {
	lister database.Lister
}

func NewLister(lister database.Lister) *Lister {
	return &Lister{
		lister: lister,
	}
}

func (l *Lister) ListPublic(ctx context.Context) ([]model.Media, error) {
	return l.lister.ListPublic(ctx)
}
