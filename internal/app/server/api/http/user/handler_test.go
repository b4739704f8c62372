package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/api/http/middleware/auth"
	"bookmarks/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, email, passwordHash string) (user.User, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) FindByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) FindByID(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Edit(ctx context.Context, id int, req user.EditRequest) (user.User, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) ChangePasswordHash(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func TestHandler_Me(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), nil)

	t.Run("Authorized", func(t *testing.T) {
		ctx := auth.WithUser(context.Background(), user.User{ID: 5, Email: "a@a.com", PasswordHash: "digest"})

		out, err := h.me(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, out.Body.ID)
		assert.Empty(t, out.Body.PasswordHash)
	})

	t.Run("Anonymous", func(t *testing.T) {
		_, err := h.me(context.Background(), nil)

		var se huma.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnauthorized, se.GetStatus())
	})
}

func TestHandler_Edit(t *testing.T) {
	email := "b@b.com"
	ctx := auth.WithUserID(context.Background(), 5)

	input := &editInput{}
	input.Body.Email = &email

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		svc.On("Edit", mock.Anything, 5, user.EditRequest{Email: &email}).
			Return(user.User{ID: 5, Email: email}, nil)

		out, err := h.edit(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, email, out.Body.Email)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		svc.On("Edit", mock.Anything, 5, mock.Anything).Return(user.User{}, user.ErrEmailTaken)

		_, err := h.edit(ctx, input)

		var se huma.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusForbidden, se.GetStatus())
	})
}
