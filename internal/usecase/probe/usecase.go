package probe

import (
	"context"
	"time"

	"backend-scaffold/internal/domain/probe"
)

type Usecase struct {
	repo  probe.Repository
	label string
}

func NewUsecase(r probe.Repository, label string) *Usecase {
	return &Usecase{repo: r, label: label}
}

// DatabaseLabel names the backing database for the probe response.
func DatabaseLabel(driver string) string {
	switch driver {
	case "mysql":
		return "MySQL"
	case "sqlite":
		return "SQLite"
	default:
		return "Supabase PostgreSQL"
	}
}

type ResultDTO struct {
	Message   string `json:"message" example:"Database connection successful"`
	Database  string `json:"database" example:"Supabase PostgreSQL"`
	UserCount int64  `json:"userCount" example:"3"`
	PostCount int64  `json:"postCount" example:"5"`
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}

// Check pings the database and counts the two passthrough tables. Any
// failure is returned as-is; the handler flattens it to the probe's 500
// shape.
func (u *Usecase) Check(ctx context.Context) (*ResultDTO, error) {
	if err := u.repo.Ping(ctx); err != nil {
		return nil, err
	}

	users, err := u.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := u.repo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}

	return &ResultDTO{
		Message:   "Database connection successful",
		Database:  u.label,
		UserCount: users,
		PostCount: posts,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
