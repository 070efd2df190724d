package probe

import "context"

// Repository is the database capability behind the connectivity probe.
type Repository interface {
	Ping(ctx context.Context) error
	CountUsers(ctx context.Context) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
}

// Cache is the cache capability behind the cache connectivity probe.
type Cache interface {
	Ping(ctx context.Context) error
}
