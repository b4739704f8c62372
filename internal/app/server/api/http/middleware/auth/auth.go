package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarks/internal/domain/token"
	"bookmarks/internal/domain/user"
	"bookmarks/internal/utils/logger"
)

// Authenticator резолвит bearer-токен в учётную запись.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (user.User, error)
}

type Auth struct {
	api  huma.API
	auth Authenticator
	log  *slog.Logger
}

func New(api huma.API, auth Authenticator, log *slog.Logger) *Auth {
	return &Auth{
		api:  api,
		auth: auth,
		log:  log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const UserKey contextKey = "user"

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		accessToken, ok := bearer(ctx.Header("Authorization"))
		if !ok {
			a.log.Debug("missing or malformed bearer", slog.String("path", ctx.URL().Path))
			a.unauthorized(ctx)
			return
		}

		u, err := a.auth.Authenticate(ctx.Context(), accessToken)
		if err != nil {
			if errors.Is(err, token.ErrUnauthorized) {
				a.log.Debug("token rejected", logger.Err(err))
				a.unauthorized(ctx)
				return
			}
			a.log.Error("authenticate failed", logger.Err(err))
			a.writeErr(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}

		next(huma.WithContext(ctx, WithUser(ctx.Context(), u)))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetHeader("WWW-Authenticate", "Bearer")
	a.writeErr(ctx, http.StatusUnauthorized, "Unauthorized")
}

func (a *Auth) writeErr(ctx huma.Context, status int, msg string) {
	if err := huma.WriteErr(a.api, ctx, status, msg); err != nil {
		a.log.Error("write error response", slog.Int("status", status), logger.Err(err))
	}
}

// bearer extracts the token from "Bearer <token>"; the scheme is case-insensitive.
func bearer(header string) (string, bool) {
	scheme, value, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, UserKey, u)
}

// WithUserID кладёт в контекст пользователя только с id, удобно в тестах хендлеров.
func WithUserID(ctx context.Context, userID int) context.Context {
	return WithUser(ctx, user.User{ID: userID})
}

func GetUser(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(UserKey).(user.User)
	return u, ok && u.ID > 0
}

func GetUserID(ctx context.Context) (int, bool) {
	u, ok := GetUser(ctx)
	return u.ID, ok
}
