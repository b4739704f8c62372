package bookmark

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

)

type Servicer interface {
	List(ctx context.Context, userID int) ([]Bookmark, error)
	Find(ctx context.Context, userID, bookmarkID int) (Bookmark, error)
	Create(ctx context.Context, userID int, req CreateRequest) (Bookmark, error)
	Edit(ctx context.Context, userID, bookmarkID int, req EditRequest) (Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID int) (Bookmark, error)
}

// Service defines the business logic for bookmark operations
type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "bookmark_service"),
	}
}

// List returns the caller's bookmarks, never nil.
func (s *Service) List(ctx context.Context, userID int) ([]Bookmark, error) {
	bookmarks, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list bookmarks", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []Bookmark{}
	}
	return bookmarks, nil
}

// Find возвращает закладку владельца; чужая выглядит как несуществующая.
func (s *Service) Find(ctx context.Context, userID, bookmarkID int) (Bookmark, error) {
	b, err := s.repo.FindOwned(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Bookmark{}, ErrNotFound
		}
		return Bookmark{}, fmt.Errorf("find bookmark: %w", err)
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, userID int, req CreateRequest) (Bookmark, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return Bookmark{}, err
	}

	b, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		s.log.Error("failed to create bookmark", "user_id", userID, "error", err)
		return Bookmark{}, fmt.Errorf("create bookmark: %w", err)
	}

	s.log.Debug("bookmark created", "user_id", userID, "bookmark_id", b.ID)
	return b, nil
}

func (s *Service) Edit(ctx context.Context, userID, bookmarkID int, req EditRequest) (Bookmark, error) {
	if err := s.validator.ValidateEdit(req); err != nil {
		return Bookmark{}, err
	}

	current, err := s.authorize(ctx, userID, bookmarkID)
	if err != nil {
		return Bookmark{}, err
	}
	if req.Empty() {
		return current, nil
	}

	b, err := s.repo.Update(ctx, userID, bookmarkID, req)
	if err != nil {
		// удалена между проверкой и записью
		if errors.Is(err, ErrNotFound) {
			return Bookmark{}, ErrForbidden
		}
		return Bookmark{}, fmt.Errorf("update bookmark: %w", err)
	}

	return b, nil
}

// Delete удаляет закладку владельца и возвращает удалённую запись.
func (s *Service) Delete(ctx context.Context, userID, bookmarkID int) (Bookmark, error) {
	if _, err := s.authorize(ctx, userID, bookmarkID); err != nil {
		return Bookmark{}, err
	}

	b, err := s.repo.Delete(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Bookmark{}, ErrForbidden
		}
		return Bookmark{}, fmt.Errorf("delete bookmark: %w", err)
	}

	s.log.Debug("bookmark deleted", "user_id", userID, "bookmark_id", bookmarkID)
	return b, nil
}

func (s *Service) authorize(ctx context.Context, userID, bookmarkID int) (Bookmark, error) {
	b, err := s.repo.FindByID(ctx, bookmarkID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Bookmark{}, fmt.Errorf("load bookmark: %w", err)
	}

	if err := AssertOwnership(b, userID); err != nil {
		s.log.Warn("bookmark access denied", "user_id", userID, "bookmark_id", bookmarkID)
		return Bookmark{}, err
	}
	return b, nil
}
