package usecase

import (
	"context"
	"fmt"

	"mediahub/internal/domain/repository/broker"
	"mediahub/internal/domain/repository/database"
	"mediahub/internal/domain/repository/minio"
	"mediahub/pkg/logger"
)

// Cleaner consumes the cleanup queue. Each message body is an object key
// whose inline removal failed.
type Cleaner struct {
	receiver     broker.Receiver
	retriever    database.Retriever
	minioRemover minio.Remover
	consumer     string
}

func NewCleaner(receiver broker.Receiver, retriever database.Retriever, minioRemover minio.Remover,
	consumer string,
) *Cleaner {
	return &Cleaner{
		receiver:     receiver,
		retriever:    retriever,
		minioRemover: minioRemover,
		consumer:     consumer,
	}
}

// Run blocks until ctx is cancelled. A key that is referenced by a record
// again is dropped without touching the blob; a failed removal stays pending
// for redelivery.
func (c *Cleaner) Run(ctx context.Context) error {
	messages, err := c.receiver.Messages(ctx, c.consumer)
	if err != nil {
		return fmt.Errorf("subscribe to cleanup queue: %w", err)
	}

	for msg := range messages {
		c.handle(ctx, msg)
	}

	logger.Info("cleaner stopped")

	return nil
}

func (c *Cleaner) handle(ctx context.Context, msg broker.Message) {
	key := msg.Body()
	if key == "" {
		c.ack(ctx, msg)

		return
	}

	referenced, err := c.retriever.ExistingObjectKeys(ctx, []string{key})
	if err != nil {
		logger.Error("failed to check cleanup key", "key", key, "err", err)
		c.nack(ctx, msg)

		return
	}

	if _, ok := referenced[key]; ok {
		logger.Warn("cleanup key is referenced by a record, skipping", "key", key)
		c.ack(ctx, msg)

		return
	}

	if err := c.minioRemover.Remove(ctx, key); err != nil {
		logger.Error("failed to remove queued blob", "key", key, "err", err)
		c.nack(ctx, msg)

		return
	}

	logger.Info("queued blob removed", "key", key)
	c.ack(ctx, msg)
}

func (c *Cleaner) ack(ctx context.Context, msg broker.Message) {
	if err := msg.Ack(ctx); err != nil {
		logger.Error("failed to ack cleanup message", "id", msg.ID(), "err", err)
	}
}

func (c *Cleaner) nack(ctx context.Context, msg broker.Message) {
	if err := msg.Nack(ctx); err != nil {
		logger.Error("failed to nack cleanup message", "id", msg.ID(), "err", err)
	}
}
