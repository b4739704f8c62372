package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/api"
	"bookmarks/internal/app/server/config"
	"bookmarks/internal/infrastructure/storage"
	"bookmarks/internal/utils/logger"
)

const readHeaderTimeout = 5 * time.Second

// Run открывает хранилище и обслуживает HTTP до отмены ctx.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("close storage", logger.Err(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(store, cfg, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, log)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, log *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := srv.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
