package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Client wraps a go-redis client behind the probe's Ping capability.
type Client struct {
	rdb *redis.Client
}

// New builds a client without dialing; connectivity is verified per probe
// call so an unreachable Redis does not kill startup.
func New(addr string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{Addr: addr, DB: db})}
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error { return c.rdb.Close() }
