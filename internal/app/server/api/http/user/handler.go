package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/api/http/apierr"
	"bookmarks/internal/app/server/api/http/middleware/auth"
	"bookmarks/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.editOp(), h.edit)
}

// me отдаёт пользователя, которого уже загрузил auth middleware.
func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	u, ok := auth.GetUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	return &meOutput{Body: u.Sanitized()}, nil
}

func (h *Handler) edit(ctx context.Context, input *editInput) (*editOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Edit(ctx, userID, user.EditRequest{
		Email:     input.Body.Email,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &editOutput{Body: u}, nil
}
