package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	redisapp "marketing_site/internal/storage/redis"
)

type Repository struct {
	db      *pgxpool.Pool
	Section SectionRepository
	Article ArticleRepository
	Contact ContactRepository
	User    UserRepository
	Media   MediaRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:      db,
		Section: NewSectionRepository(db),
		Article: NewArticleRepository(db),
		Contact: NewContactRepository(db),
		User:    NewUserRepository(db),
		Media:   NewMediaRepository(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

// NewTokenRepository lives here rather than on Repository because it is
// backed by redis, not postgres.
func NewTokenRepository(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{Client: client}
}
