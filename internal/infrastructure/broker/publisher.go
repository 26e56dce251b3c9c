package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const bodyField = "body"

type Publisher struct {
	client  *Client
	timeout time.Duration
	maxLen  int64
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		maxLen:  cfg.MaxLen,
	}
}

func (p *Publisher) Publish(ctx context.Context, body string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{bodyField: body},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.redis.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publish to %q: %w", p.client.stream, err)
	}

	return nil
}

// NopPublisher drops every message. It stands in for a stream when no broker
// is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string) error {
	return nil
}
