package user

// Credentials is the sign-up / login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// EditRequest - частичное обновление профиля, nil-поля не меняются.
type EditRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
}

func (r EditRequest) Empty() bool {
	return r.Email == nil && r.FirstName == nil && r.LastName == nil
}
