package usecase

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository/broker"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, body string) error {
	return m.Called(ctx, body).Error(0)
}

type MockWriter struct{ mock.Mock }

func (m *MockWriter) Create(ctx context.Context, media model.NewMedia) (*model.Media, error) {
	args := m.Called(ctx, media)
	if v := args.Get(0); v != nil {
		return v.(*model.Media), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockRetriever struct{ mock.Mock }

func (m *MockRetriever) GetByID(ctx context.Context, id string) (*model.Media, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Media), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRetriever) ExistingObjectKeys(ctx context.Context, keys []string) (map[string]struct{}, error) {
	args := m.Called(ctx, keys)
	if v := args.Get(0); v != nil {
		return v.(map[string]struct{}), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockDBRemover struct{ mock.Mock }

func (m *MockDBRemover) RemoveByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockDBLister struct{ mock.Mock }

func (m *MockDBLister) ListPublic(ctx context.Context) ([]model.Media, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Media), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockObjectUploader struct{ mock.Mock }

func (m *MockObjectUploader) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, body, size, contentType).Error(0)
}

type MockObjectRemover struct{ mock.Mock }

func (m *MockObjectRemover) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockStreamer struct{ mock.Mock }

func (m *MockStreamer) Stream(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if v := args.Get(0); v != nil {
		return v.(io.ReadCloser), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockStater struct{ mock.Mock }

func (m *MockStater) Stat(ctx context.Context, key string) entity.ObjectStat {
	return m.Called(ctx, key).Get(0).(entity.ObjectStat)
}

type MockObjectLister struct{ mock.Mock }

func (m *MockObjectLister) ListObjects(ctx context.Context, olderThan time.Time) ([]entity.ObjectInfo, error) {
	args := m.Called(ctx, olderThan)
	if v := args.Get(0); v != nil {
		return v.([]entity.ObjectInfo), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockReceiver struct{ mock.Mock }

func (m *MockReceiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	args := m.Called(ctx, consumerName)
	if v := args.Get(0); v != nil {
		return v.(<-chan broker.Message), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockMessage struct {
	mock.Mock
	id   string
	body string
}

func (m *MockMessage) ID() string   { return m.id }
func (m *MockMessage) Body() string { return m.body }

func (m *MockMessage) Ack(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMessage) Nack(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
