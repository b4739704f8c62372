package user

import "bookmarks/internal/domain/user"

type meOutput struct {
	Body user.User
}

type editUserBody struct {
	_         struct{} `json:"-" additionalProperties:"true"`
	Email     *string  `json:"email,omitempty" format:"email" maxLength:"254"`
	FirstName *string  `json:"firstName,omitempty" maxLength:"100"`
	LastName  *string  `json:"lastName,omitempty" maxLength:"100"`
}

type editInput struct {
	Body editUserBody
}

type editOutput struct {
	Body user.User
}
