package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bookmarks/internal/domain/auth"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/token"
	"bookmarks/internal/domain/user"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "user validation", err: fmt.Errorf("%w: email is required", user.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "bookmark validation", err: bookmark.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "expired token", err: token.ErrExpired, status: http.StatusUnauthorized, detail: "Unauthorized"},
		{name: "bad credentials", err: auth.ErrInvalidCredentials, status: http.StatusForbidden, detail: "Credentials incorrect"},
		{name: "duplicate email", err: user.ErrEmailTaken, status: http.StatusForbidden, detail: "Email already exists"},
		{name: "not owner", err: bookmark.ErrForbidden, status: http.StatusForbidden},
		{name: "bookmark missing", err: bookmark.ErrNotFound, status: http.StatusNotFound},
		{name: "user missing", err: user.ErrNotFound, status: http.StatusNotFound},
		{name: "store failure", err: errors.New("pq: connection refused"), status: http.StatusInternalServerError, detail: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := From(slog.Default(), tt.err)

			var se huma.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.GetStatus())
			if tt.detail != "" {
				assert.Contains(t, se.Error(), tt.detail)
			}
		})
	}
}

func TestFrom_HidesInternalCause(t *testing.T) {
	err := From(slog.Default(), errors.New("password=hunter2 in dsn"))
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestFrom_Nil(t *testing.T) {
	assert.NoError(t, From(slog.Default(), nil))
}
