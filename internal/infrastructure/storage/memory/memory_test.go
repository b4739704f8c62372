package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestUsers_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	first, err := users.Create(ctx, "a@a.com", "h1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	_, err = users.Create(ctx, "a@a.com", "h2")
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	found, err := users.FindByEmail(ctx, "a@a.com")
	require.NoError(t, err)
	assert.Equal(t, "h1", found.PasswordHash)
}

func TestUsers_ConcurrentSignUpSameEmail(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := users.Create(ctx, "race@a.com", "h"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestUsers_Update(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	a, err := users.Create(ctx, "a@a.com", "h")
	require.NoError(t, err)
	_, err = users.Create(ctx, "b@b.com", "h")
	require.NoError(t, err)

	_, err = users.Update(ctx, a.ID, user.EditRequest{Email: strPtr("b@b.com")})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	updated, err := users.Update(ctx, a.ID, user.EditRequest{Email: strPtr("c@c.com"), FirstName: strPtr("Ann")})
	require.NoError(t, err)
	assert.Equal(t, "c@c.com", updated.Email)
	assert.Equal(t, "Ann", *updated.FirstName)

	// старый email освобождается
	_, err = users.FindByEmail(ctx, "a@a.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = users.Create(ctx, "a@a.com", "h")
	assert.NoError(t, err)

	_, err = users.Update(ctx, 999, user.EditRequest{FirstName: strPtr("x")})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestBookmarks_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	store := New()

	alice, err := store.Users().Create(ctx, "alice@a.com", "h")
	require.NoError(t, err)
	bob, err := store.Users().Create(ctx, "bob@a.com", "h")
	require.NoError(t, err)

	repo := store.Bookmarks()
	b, err := repo.Create(ctx, alice.ID, bookmark.CreateRequest{Title: "Go", Link: "https://go.dev", Description: strPtr("docs")})
	require.NoError(t, err)

	list, err := repo.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = repo.FindOwned(ctx, bob.ID, b.ID)
	assert.ErrorIs(t, err, bookmark.ErrNotFound)

	_, err = repo.Update(ctx, bob.ID, b.ID, bookmark.EditRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, bookmark.ErrNotFound)

	_, err = repo.Delete(ctx, bob.ID, b.ID)
	assert.ErrorIs(t, err, bookmark.ErrNotFound)

	got, err := repo.FindOwned(ctx, alice.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Title)
	assert.Equal(t, "docs", *got.Description)
}

func TestBookmarks_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := New()

	u, err := store.Users().Create(ctx, "a@a.com", "h")
	require.NoError(t, err)

	repo := store.Bookmarks()
	b, err := repo.Create(ctx, u.ID, bookmark.CreateRequest{Title: "Go", Link: "https://go.dev"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, u.ID, b.ID, bookmark.EditRequest{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Equal(t, "x", updated.Title)
	assert.Equal(t, "https://go.dev", updated.Link)

	deleted, err := repo.Delete(ctx, u.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, deleted.ID)

	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, bookmark.ErrNotFound)
}

func TestBookmarks_UnknownOwner(t *testing.T) {
	_, err := New().Bookmarks().Create(context.Background(), 42, bookmark.CreateRequest{Title: "x", Link: "https://x.io"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestStorage_PingCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, New().Ping(ctx))
	assert.NoError(t, New().Ping(context.Background()))
}
