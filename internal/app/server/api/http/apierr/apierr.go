// Package apierr maps domain errors to HTTP problem responses.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarks/internal/domain/auth"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/token"
	"bookmarks/internal/domain/user"
	"bookmarks/internal/utils/logger"
)

// From converts err into a huma status error. Unknown errors are logged and
// reported as a bare 500.
func From(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, user.ErrInvalidInput), errors.Is(err, bookmark.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, token.ErrUnauthorized):
		return huma.Error401Unauthorized("Unauthorized")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return huma.Error403Forbidden("Credentials incorrect")
	case errors.Is(err, user.ErrEmailTaken):
		return huma.Error403Forbidden("Email already exists")
	case errors.Is(err, bookmark.ErrForbidden):
		return huma.Error403Forbidden("Access to resources denied")
	case errors.Is(err, bookmark.ErrNotFound):
		return huma.Error404NotFound("Bookmark not found")
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("User not found")
	}

	log.Error("unhandled error", logger.Err(err))
	return huma.Error500InternalServerError("Internal server error")
}
