package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"bookmarks/internal/domain/bookmark"
)

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

type BookmarkRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBookmarkRepository(pool *pgxpool.Pool, log *slog.Logger) *BookmarkRepository {
	return &BookmarkRepository{
		pool: pool,
		log:  log.With("component", "bookmark_repository"),
	}
}

func (r *BookmarkRepository) List(ctx context.Context, userID int) ([]bookmark.Bookmark, error) {
	const query = `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list bookmarks", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []bookmark.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *BookmarkRepository) FindByID(ctx context.Context, bookmarkID int) (bookmark.Bookmark, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1`, bookmarkID)
	return r.one(row, "get", bookmarkID)
}

func (r *BookmarkRepository) FindOwned(ctx context.Context, userID, bookmarkID int) (bookmark.Bookmark, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1 AND user_id = $2`,
		bookmarkID, userID)
	return r.one(row, "get", bookmarkID)
}

func (r *BookmarkRepository) Create(ctx context.Context, userID int, req bookmark.CreateRequest) (bookmark.Bookmark, error) {
	const query = `
		INSERT INTO bookmarks (user_id, title, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + bookmarkColumns

	b, err := scanBookmark(r.pool.QueryRow(ctx, query, userID, req.Title, req.Description, req.Link))
	if err != nil {
		r.log.Error("failed to create bookmark", "user_id", userID, "error", err)
		return bookmark.Bookmark{}, fmt.Errorf("insert bookmark: %w", err)
	}
	return b, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, userID, bookmarkID int, req bookmark.EditRequest) (bookmark.Bookmark, error) {
	const query = `
		UPDATE bookmarks
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    link        = COALESCE($5, link),
		    updated_at  = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + bookmarkColumns

	row := r.pool.QueryRow(ctx, query, bookmarkID, userID, req.Title, req.Description, req.Link)
	return r.one(row, "update", bookmarkID)
}

func (r *BookmarkRepository) Delete(ctx context.Context, userID, bookmarkID int) (bookmark.Bookmark, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM bookmarks WHERE id = $1 AND user_id = $2 RETURNING `+bookmarkColumns,
		bookmarkID, userID)
	return r.one(row, "delete", bookmarkID)
}

func (r *BookmarkRepository) one(row pgx.Row, op string, bookmarkID int) (bookmark.Bookmark, error) {
	b, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bookmark.Bookmark{}, bookmark.ErrNotFound
		}
		r.log.Error("bookmark query failed", "op", op, "bookmark_id", bookmarkID, "error", err)
		return bookmark.Bookmark{}, fmt.Errorf("%s bookmark: %w", op, err)
	}
	return b, nil
}

func scanBookmark(row pgx.Row) (bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
