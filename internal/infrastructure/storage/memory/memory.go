// Package memory is an in-process storage driver for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
)

type Storage struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[int]user.User
	emails       map[string]int
	bookmarks    map[int]bookmark.Bookmark
	nextUser     int
	nextBookmark int
}

func New() *Storage {
	return &Storage{
		now:       func() time.Time { return time.Now().UTC() },
		users:     make(map[int]user.User),
		emails:    make(map[string]int),
		bookmarks: make(map[int]bookmark.Bookmark),
	}
}

func (s *Storage) Users() user.Repository {
	return (*userRepository)(s)
}

func (s *Storage) Bookmarks() bookmark.Repository {
	return (*bookmarkRepository)(s)
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Close() error {
	return nil
}

type userRepository Storage

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[email]; ok {
		return user.User{}, user.ErrEmailTaken
	}

	r.nextUser++
	now := r.now()
	u := user.User{
		ID:           r.nextUser,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.emails[email] = u.ID

	return u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return r.users[id], nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, id int, req user.EditRequest) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	if req.Email != nil && *req.Email != u.Email {
		if _, taken := r.emails[*req.Email]; taken {
			return user.User{}, user.ErrEmailTaken
		}
		delete(r.emails, u.Email)
		r.emails[*req.Email] = id
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = clone(req.FirstName)
	}
	if req.LastName != nil {
		u.LastName = clone(req.LastName)
	}
	u.UpdatedAt = r.now()
	r.users[id] = u

	return u, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = r.now()
	r.users[id] = u

	return nil
}

type bookmarkRepository Storage

func (r *bookmarkRepository) List(ctx context.Context, userID int) ([]bookmark.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []bookmark.Bookmark{}
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *bookmarkRepository) FindByID(ctx context.Context, bookmarkID int) (bookmark.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return bookmark.Bookmark{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookmarks[bookmarkID]
	if !ok {
		return bookmark.Bookmark{}, bookmark.ErrNotFound
	}
	return b, nil
}

func (r *bookmarkRepository) FindOwned(ctx context.Context, userID, bookmarkID int) (bookmark.Bookmark, error) {
	b, err := r.FindByID(ctx, bookmarkID)
	if err != nil {
		return bookmark.Bookmark{}, err
	}
	if b.UserID != userID {
		return bookmark.Bookmark{}, bookmark.ErrNotFound
	}
	return b, nil
}

func (r *bookmarkRepository) Create(ctx context.Context, userID int, req bookmark.CreateRequest) (bookmark.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return bookmark.Bookmark{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// внешний ключ на users
	if _, ok := r.users[userID]; !ok {
		return bookmark.Bookmark{}, user.ErrNotFound
	}

	r.nextBookmark++
	now := r.now()
	b := bookmark.Bookmark{
		ID:          r.nextBookmark,
		UserID:      userID,
		Title:       req.Title,
		Description: clone(req.Description),
		Link:        req.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.bookmarks[b.ID] = b

	return b, nil
}

func (r *bookmarkRepository) Update(ctx context.Context, userID, bookmarkID int, req bookmark.EditRequest) (bookmark.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return bookmark.Bookmark{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookmarks[bookmarkID]
	if !ok || b.UserID != userID {
		return bookmark.Bookmark{}, bookmark.ErrNotFound
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Description != nil {
		b.Description = clone(req.Description)
	}
	if req.Link != nil {
		b.Link = *req.Link
	}
	b.UpdatedAt = r.now()
	r.bookmarks[bookmarkID] = b

	return b, nil
}

func (r *bookmarkRepository) Delete(ctx context.Context, userID, bookmarkID int) (bookmark.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return bookmark.Bookmark{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookmarks[bookmarkID]
	if !ok || b.UserID != userID {
		return bookmark.Bookmark{}, bookmark.ErrNotFound
	}
	delete(r.bookmarks, bookmarkID)

	return b, nil
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
