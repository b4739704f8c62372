package user

import "time"

// User - учётная запись. PasswordHash никогда не уходит наружу.
type User struct {
	ID           int       `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Email        string    `json:"email"`
	FirstName    *string   `json:"firstName,omitempty"`
	LastName     *string   `json:"lastName,omitempty"`
	PasswordHash string    `json:"-"`
}

// Sanitized returns a copy without the password hash.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
