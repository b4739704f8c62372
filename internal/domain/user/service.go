package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, email, passwordHash string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	Edit(ctx context.Context, id int, req EditRequest) (User, error)
	ChangePasswordHash(ctx context.Context, id int, passwordHash string) error
}

// Service - каталог учётных записей поверх Repository.
type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *Service) Create(ctx context.Context, email, passwordHash string) (User, error) {
	u, err := s.repo.Create(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.log.Debug("email already registered", "email", email)
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return u.Sanitized(), nil
}

// FindByEmail keeps the password hash: the auth flow needs it to verify.
func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *Service) FindByID(ctx context.Context, id int) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u.Sanitized(), nil
}

// Edit applies a partial update. An empty request returns the current record.
func (s *Service) Edit(ctx context.Context, id int, req EditRequest) (User, error) {
	if err := s.validator.ValidateEdit(req); err != nil {
		s.log.Debug("validation failed", "user_id", id, "error", err)
		return User{}, err
	}

	if req.Empty() {
		return s.FindByID(ctx, id)
	}

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return User{}, ErrEmailTaken
		case errors.Is(err, ErrNotFound):
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("update user: %w", err)
	}

	return u.Sanitized(), nil
}

func (s *Service) ChangePasswordHash(ctx context.Context, id int, passwordHash string) error {
	if err := s.repo.UpdatePasswordHash(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}
