package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"bookmarks/internal/domain/token"
	"bookmarks/internal/domain/user"
)

// Hasher is the credential hasher contract.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(digest, plain string) (bool, error)
	NeedsRehash(digest string) bool
}

type Servicer interface {
	SignUp(ctx context.Context, creds user.Credentials) (user.User, error)
	SignIn(ctx context.Context, creds user.Credentials) (string, error)
	Authenticate(ctx context.Context, accessToken string) (user.User, error)
}

type Service struct {
	users     user.Servicer
	hasher    Hasher
	tokens    token.Servicer
	validator user.Validator
	log       *slog.Logger
}

func NewService(users user.Servicer, hasher Hasher, tokens token.Servicer, validator user.Validator, log *slog.Logger) *Service {
	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		log:       log.With("component", "auth"),
	}
}

// SignUp регистрирует пользователя и возвращает его без хэша пароля.
func (s *Service) SignUp(ctx context.Context, creds user.Credentials) (user.User, error) {
	if err := s.validator.ValidateCredentials(creds); err != nil {
		return user.User{}, err
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, creds.Email, hash)
	if err != nil {
		return user.User{}, err
	}

	s.log.Info("user signed up", "user_id", u.ID)
	return u.Sanitized(), nil
}

// SignIn проверяет пароль и выпускает access token.
func (s *Service) SignIn(ctx context.Context, creds user.Credentials) (string, error) {
	if err := s.validator.ValidateCredentials(creds); err != nil {
		return "", err
	}

	u, err := s.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := s.hasher.Verify(u.PasswordHash, creds.Password)
	if err != nil {
		s.log.Error("stored digest is unusable", "user_id", u.ID, "error", err)
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u.ID, creds.Password)
	}

	accessToken, err := s.tokens.Issue(ctx, u.ID, u.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return accessToken, nil
}

// rehash upgrades a legacy digest. Failure here does not block sign-in.
func (s *Service) rehash(ctx context.Context, userID int, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Warn("rehash failed", "user_id", userID, "error", err)
		return
	}
	if err := s.users.ChangePasswordHash(ctx, userID, hash); err != nil {
		s.log.Warn("rehash not stored", "user_id", userID, "error", err)
		return
	}
	s.log.Info("password digest upgraded", "user_id", userID)
}

// Authenticate resolves a bearer token to the account it was issued for.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (user.User, error) {
	claims, err := s.tokens.Parse(ctx, accessToken)
	if err != nil {
		return user.User{}, err
	}

	id, err := claims.UserID()
	if err != nil {
		return user.User{}, err
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, fmt.Errorf("%w: account %d no longer exists", token.ErrUnauthorized, id)
		}
		return user.User{}, err
	}

	return u.Sanitized(), nil
}
