package broker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisMessage struct {
	stream      string
	group       string
	id          string
	body        string
	redisClient *redis.Client
}

func (m *RedisMessage) ID() string {
	return m.id
}

func (m *RedisMessage) Body() string {
	return m.body
}

func (m *RedisMessage) Ack(ctx context.Context) error {
	return m.redisClient.XAck(ctx, m.stream, m.group, m.id).Err()
}

// Nack leaves the entry in the consumer's pending list; the receiver hands it
// out again on its next pending drain.
func (m *RedisMessage) Nack(context.Context) error {
	return nil
}
