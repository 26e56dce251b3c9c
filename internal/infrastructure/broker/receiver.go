package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mediahub/internal/domain/repository/broker"
	"mediahub/pkg/logger"
)

const (
	pendingID = "0"
	newID     = ">"
)

type Receiver struct {
	redis         *redis.Client
	stream        string
	group         string
	blockTime     time.Duration
	batchSize     int64
	retryInterval time.Duration
}

func NewReceiver(client *Client, cfg ReceiverConfig) *Receiver {
	r := &Receiver{
		redis:         client.redis,
		stream:        client.stream,
		group:         client.group,
		blockTime:     time.Duration(cfg.BlockInMs) * time.Millisecond,
		batchSize:     cfg.BatchSize,
		retryInterval: time.Duration(cfg.RetryIntervalInMs) * time.Millisecond,
	}

	if r.blockTime <= 0 {
		r.blockTime = 5 * time.Second
	}
	if r.batchSize <= 0 {
		r.batchSize = 10
	}
	if r.retryInterval <= 0 {
		r.retryInterval = 30 * time.Second
	}

	return r
}

// Messages starts a consumer loop. Entries this consumer received earlier but
// never acknowledged are delivered first, then new entries; the pending list
// is revisited every retry interval. The channel closes when ctx is done.
func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.redis == nil {
		logger.Error("redis client is nil in receiver")

		return nil, errors.New("redis not initialized")
	}

	out := make(chan broker.Message)
	go r.consumeLoop(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consumeLoop(ctx context.Context, out chan broker.Message, consumerName string) {
	defer close(out)

	drainPending := true
	lastDrain := time.Now()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("message receiving context cancelled", "stream", r.stream, "consumer", consumerName)

			return
		default:
		}

		if !drainPending && time.Since(lastDrain) >= r.retryInterval {
			drainPending = true
		}

		if drainPending {
			if !r.readAndEmit(ctx, out, consumerName, pendingID) {
				return
			}
			drainPending = false
			lastDrain = time.Now()

			continue
		}

		if !r.readAndEmit(ctx, out, consumerName, newID) {
			return
		}
	}
}

// readAndEmit reads one batch starting at id and forwards it. It reports false
// once ctx is done.
func (r *Receiver) readAndEmit(ctx context.Context, out chan broker.Message, consumerName, id string) bool {
	args := &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: consumerName,
		Streams:  []string{r.stream, id},
		Count:    r.batchSize,
		Block:    -1,
	}
	if id == newID {
		args.Block = r.blockTime
	}

	entries, err := r.redis.XReadGroup(ctx, args).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		if ctx.Err() != nil {
			return false
		}

		logger.Error("failed to read from redis stream group", "stream", r.stream, "err", err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Second):
		}

		return true
	}

	for _, stream := range entries {
		for _, msg := range stream.Messages {
			body, ok := msg.Values[bodyField].(string)
			if !ok {
				logger.Error("dropping redis message without a body", "id", msg.ID)
				if err := r.redis.XAck(ctx, r.stream, r.group, msg.ID).Err(); err != nil {
					logger.Error("failed to ack malformed message", "id", msg.ID, "err", err)
				}

				continue
			}

			m := &RedisMessage{
				stream:      r.stream,
				group:       r.group,
				id:          msg.ID,
				body:        body,
				redisClient: r.redis,
			}

			select {
			case <-ctx.Done():
				return false
			case out <- m:
			}
		}
	}

	return true
}
