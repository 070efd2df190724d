package probemock

import "context"

// Repo is a function-backed mock that satisfies probe.Repository.
// Only set the functions your test needs.
type Repo struct {
	PingFn       func(ctx context.Context) error
	CountUsersFn func(ctx context.Context) (int64, error)
	CountPostsFn func(ctx context.Context) (int64, error)
}

func (m *Repo) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *Repo) CountUsers(ctx context.Context) (int64, error) {
	if m.CountUsersFn != nil {
		return m.CountUsersFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountPosts(ctx context.Context) (int64, error) {
	if m.CountPostsFn != nil {
		return m.CountPostsFn(ctx)
	}
	return 0, nil
}

// Cache is a function-backed mock that satisfies probe.Cache.
type Cache struct {
	PingFn func(ctx context.Context) error
}

func (m *Cache) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}
