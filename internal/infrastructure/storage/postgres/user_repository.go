package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"bookmarks/internal/domain/user"
)

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING `+userColumns,
		email, passwordHash)

	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailTaken
		}
		r.log.Error("failed to create user", "error", err)
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return r.one(row, "email", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.one(row, "user_id", id)
}

func (r *UserRepository) Update(ctx context.Context, id int, req user.EditRequest) (user.User, error) {
	const query = `
		UPDATE users
		SET email      = COALESCE($2, email),
		    first_name = COALESCE($3, first_name),
		    last_name  = COALESCE($4, last_name),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	row := r.pool.QueryRow(ctx, query, id, req.Email, req.FirstName, req.LastName)

	u, err := scanUser(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return user.User{}, user.ErrNotFound
		case isUniqueViolation(err):
			return user.User{}, user.ErrEmailTaken
		}
		r.log.Error("failed to update user", "user_id", id, "error", err)
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) one(row pgx.Row, key string, value any) (user.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to get user", key, value, "error", err)
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
