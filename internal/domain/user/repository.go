package user

import (
	"context"
)

// Repository is implemented by every storage driver. Create and Update must
// report a duplicate email as ErrEmailTaken; lookups report ErrNotFound.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	Update(ctx context.Context, id int, req EditRequest) (User, error)
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
}
