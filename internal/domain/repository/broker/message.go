package broker

import "context"

type Message interface {
	ID() string
	Body() string
	Ack(ctx context.Context) error
	Nack(ctx context.Context) error
}
