package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/config"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
	"bookmarks/internal/infrastructure/storage/memory"
	"bookmarks/internal/infrastructure/storage/postgres"
)

type Storage interface {
	// Пользователи
	Users() user.Repository
	// Закладки
	Bookmarks() bookmark.Repository

	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Storage = (*postgres.Storage)(nil)
	_ Storage = (*memory.Storage)(nil)
)

// Open выбирает драйвер по cfg.Driver.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrBadDriver, cfg.Driver)
	}
}
