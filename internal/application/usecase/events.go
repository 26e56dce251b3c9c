package usecase

import (
	"context"
	"encoding/json"
	"time"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository/broker"
	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
)

// publishEvent announces a lifecycle change. Failures are logged only; the
// operation that triggered the event has already completed.
func publishEvent(ctx context.Context, publisher broker.Publisher, typ entity.EventType, m *model.Media) {
	body, err := json.Marshal(entity.LifecycleEvent{
		Type:       typ,
		ID:         m.ID,
		ObjectKey:  m.ObjectKey,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Error("failed to encode lifecycle event", "type", string(typ), "id", m.ID, "err", err)

		return
	}

	if err := publisher.Publish(context.WithoutCancel(ctx), string(body)); err != nil {
		logger.Error("failed to publish lifecycle event", "type", string(typ), "id", m.ID, "err", err)
	}
}

// enqueueCleanup hands a blob that could not be removed inline to the cleanup
// consumer.
func enqueueCleanup(ctx context.Context, publisher broker.Publisher, objectKey string) {
	if err := publisher.Publish(context.WithoutCancel(ctx), objectKey); err != nil {
		logger.Error("failed to enqueue object for cleanup, it is now orphaned", "key", objectKey, "err", err)

		return
	}

	metrics.CleanupQueuedTotal.Inc()
	logger.Warn("object queued for cleanup", "key", objectKey)
}
