package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/config"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
	"bookmarks/internal/infrastructure/migration"
)

type Storage struct {
	pool      *pgxpool.Pool
	users     *UserRepository
	bookmarks *BookmarkRepository
}

// New открывает пул и, если задан путь, применяет миграции.
func New(ctx context.Context, cfg config.DB, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.Migrations != "" {
		if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	return &Storage{
		pool:      pool,
		users:     NewUserRepository(pool, log),
		bookmarks: NewBookmarkRepository(pool, log),
	}, nil
}

func (s *Storage) Users() user.Repository {
	return s.users
}

func (s *Storage) Bookmarks() bookmark.Repository {
	return s.bookmarks
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
