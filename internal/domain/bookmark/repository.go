package bookmark

import (
	"context"
)

// Repository хранилище закладок. Методы с userID ограничены владельцем;
// FindByID не ограничен и нужен только для проверки владения.
type Repository interface {
	List(ctx context.Context, userID int) ([]Bookmark, error)
	FindByID(ctx context.Context, bookmarkID int) (Bookmark, error)
	FindOwned(ctx context.Context, userID, bookmarkID int) (Bookmark, error)
	Create(ctx context.Context, userID int, req CreateRequest) (Bookmark, error)
	Update(ctx context.Context, userID, bookmarkID int, req EditRequest) (Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID int) (Bookmark, error)
}
