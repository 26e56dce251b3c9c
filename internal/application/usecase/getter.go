package usecase

import (
	"context"
	"io"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository/database"
	"mediahub/internal/domain/repository/minio"
)

// Getter implements the Getter abstraction for reading media.
type Getter struct {
	retriever database.Retriever
	streamer  minio.Streamer
	stater    minio.Stater
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever, streamer minio.Streamer, stater minio.Stater) *Getter {
	return &Getter{
		retriever: retriever,
		streamer:  streamer,
		stater:    stater,
	}
}

// FindByID returns repository.ErrMediaNotFound when no record exists.
func (g *Getter) FindByID(ctx context.Context, id string) (*model.Media, error) {
	return g.retriever.GetByID(ctx, id)
}

// FileStream opens the blob stored under objectKey. The caller closes it.
func (g *Getter) FileStream(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	return g.streamer.Stream(ctx, objectKey)
}

// Stat looks up the record and then the state of its blob.
func (g *Getter) Stat(ctx context.Context, id string) (*model.Media, entity.ObjectStat, error) {
	media, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, entity.ObjectStat{}, err
	}

	return media, g.stater.Stat(ctx, media.ObjectKey), nil
}
