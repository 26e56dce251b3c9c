package broker

import "context"

// Publisher appends one message body to a stream.
type Publisher interface {
	Publish(ctx context.Context, body string) error
}
