package auth

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/api/http/apierr"
	"bookmarks/internal/domain/auth"
)

type Handler struct {
	service    auth.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service auth.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signUpOp(), h.signUp)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) signUp(ctx context.Context, input *signUpInput) (*signUpOutput, error) {
	u, err := h.service.SignUp(ctx, input.Body.credentials())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &signUpOutput{Body: u}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	accessToken, err := h.service.SignIn(ctx, input.Body.credentials())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &loginOutput{
		Body: LoginResponse{AccessToken: accessToken},
	}, nil
}
