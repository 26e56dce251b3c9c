package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
)

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, in entity.UploadInput) (*model.Media, error) {
	args := m.Called(ctx, in)
	if v := args.Get(0); v != nil {
		return v.(*model.Media), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockLister struct{ mock.Mock }

func (m *MockLister) ListPublic(ctx context.Context) ([]model.Media, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Media), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockGetter struct{ mock.Mock }

func (m *MockGetter) FindByID(ctx context.Context, id string) (*model.Media, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Media), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockGetter) FileStream(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	args := m.Called(ctx, objectKey)
	if v := args.Get(0); v != nil {
		return v.(io.ReadCloser), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockGetter) Stat(ctx context.Context, id string) (*model.Media, entity.ObjectStat, error) {
	args := m.Called(ctx, id)
	var media *model.Media
	if v := args.Get(0); v != nil {
		media = v.(*model.Media)
	}

	return media, args.Get(1).(entity.ObjectStat), args.Error(2)
}

type MockDeleter struct{ mock.Mock }

func (m *MockDeleter) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}
