package broker

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"mediahub/pkg/logger"
)

// Client binds a Redis connection to one stream and its consumer group.
type Client struct {
	redis  *redis.Client
	stream string
	group  string
}

// Dial opens and pings a Redis connection. The returned client is shared by
// every stream and is closed by the caller.
func Dial(ctx context.Context, uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse broker uri: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("ping broker: %w", err)
	}

	logger.Info("connected to broker", "addr", opt.Addr)

	return rdb, nil
}

func NewClient(ctx context.Context, rdb *redis.Client, stream, group string) (*Client, error) {
	err := rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		return nil, fmt.Errorf("create consumer group %q on %q: %w", group, stream, err)
	}

	return &Client{
		redis:  rdb,
		stream: stream,
		group:  group,
	}, nil
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
