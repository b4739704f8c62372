package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, passwordHash string) (User, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, req EditRequest) (User, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewRequestValidator(), slog.Default())
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "a@a.com", "$argon2id$hash").
		Return(User{ID: 1, Email: "a@a.com", PasswordHash: "$argon2id$hash"}, nil)

	u, err := service.Create(context.Background(), "a@a.com", "$argon2id$hash")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Empty(t, u.PasswordHash)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_EmailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "a@a.com", mock.AnythingOfType("string")).
		Return(User{}, ErrEmailTaken)

	_, err := service.Create(context.Background(), "a@a.com", "hash")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "a@a.com", "hash").Return(User{}, errors.New("database error"))

	_, err := service.Create(context.Background(), "a@a.com", "hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_FindByEmail_KeepsHash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "a@a.com").
		Return(User{ID: 1, Email: "a@a.com", PasswordHash: "digest"}, nil)

	u, err := service.FindByEmail(context.Background(), "a@a.com")
	require.NoError(t, err)
	assert.Equal(t, "digest", u.PasswordHash)
}

func TestService_FindByEmail_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "x@a.com").Return(User{}, ErrNotFound)

	_, err := service.FindByEmail(context.Background(), "x@a.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_FindByID_Sanitizes(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, 7).Return(User{ID: 7, PasswordHash: "digest"}, nil)

	u, err := service.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Empty(t, u.PasswordHash)
}

func TestService_Edit(t *testing.T) {
	email := "b@b.com"

	tests := []struct {
		name      string
		req       EditRequest
		setupMock func(*MockRepository)
		wantErr   error
		wantEmail string
	}{
		{
			name: "updates email",
			req:  EditRequest{Email: &email},
			setupMock: func(m *MockRepository) {
				m.On("Update", mock.Anything, 1, EditRequest{Email: &email}).
					Return(User{ID: 1, Email: email, PasswordHash: "digest"}, nil)
			},
			wantEmail: email,
		},
		{
			name: "empty request returns current",
			req:  EditRequest{},
			setupMock: func(m *MockRepository) {
				m.On("FindByID", mock.Anything, 1).Return(User{ID: 1, Email: "a@a.com"}, nil)
			},
			wantEmail: "a@a.com",
		},
		{
			name: "email taken",
			req:  EditRequest{Email: &email},
			setupMock: func(m *MockRepository) {
				m.On("Update", mock.Anything, 1, mock.Anything).Return(User{}, ErrEmailTaken)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:      "invalid email",
			req:       EditRequest{Email: strPtr("nope")},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)
			service := newTestService(mockRepo)

			u, err := service.Edit(context.Background(), 1, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, u.Email)
			assert.Empty(t, u.PasswordHash)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_ChangePasswordHash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("UpdatePasswordHash", mock.Anything, 3, "new").Return(nil)

	require.NoError(t, service.ChangePasswordHash(context.Background(), 3, "new"))
	mockRepo.AssertExpectations(t)
}
