package bookmark

import "time"

type Bookmark struct {
	ID          int       `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Link        string    `json:"link"`
	UserID      int       `json:"userId"`
}
