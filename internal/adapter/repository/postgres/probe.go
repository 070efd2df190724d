package postgres

import (
	"context"

	"gorm.io/gorm"
)

type ProbeRepository struct{ db *gorm.DB }

func NewProbeRepository(db *gorm.DB) *ProbeRepository { return &ProbeRepository{db: db} }

func (r *ProbeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *ProbeRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

func (r *ProbeRepository) CountPosts(ctx context.Context) (int64, error) {
	return r.count(ctx, "posts")
}

func (r *ProbeRepository) count(ctx context.Context, table string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Table(table).Count(&n)
	return n, res.Error
}
