package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarks/internal/utils/logger"
)

const pingTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	storage    Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *struct{}) (*Output, error) {
	h.log.Debug("health check request received")

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.log.Warn("storage is unreachable", logger.Err(err))
		return nil, huma.Error503ServiceUnavailable("Storage unavailable")
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: "OK",
		},
	}, nil
}
