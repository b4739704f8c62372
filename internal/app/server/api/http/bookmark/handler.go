package bookmark

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/api/http/apierr"
	"bookmarks/internal/app/server/api/http/middleware/auth"
	"bookmarks/internal/domain/bookmark"
)

type Handler struct {
	service    bookmark.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service bookmark.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.editOp(), h.edit)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	bookmarks, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &listOutput{Body: bookmarks}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.Find(ctx, userID, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &output{Body: b}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.Create(ctx, userID, bookmark.CreateRequest{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Link:        input.Body.Link,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &output{Body: b}, nil
}

func (h *Handler) edit(ctx context.Context, input *editInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.Edit(ctx, userID, input.ID, bookmark.EditRequest{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Link:        input.Body.Link,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &output{Body: b}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.Delete(ctx, userID, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &output{Body: b}, nil
}
