package auth

import "bookmarks/internal/domain/user"

type credentialsBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Email    string   `json:"email" format:"email" maxLength:"254" example:"a@a.com"`
	Password string   `json:"password" minLength:"1" maxLength:"128"`
}

func (b credentialsBody) credentials() user.Credentials {
	return user.Credentials{Email: b.Email, Password: b.Password}
}

type signUpInput struct {
	Body credentialsBody
}

type signUpOutput struct {
	Body user.User
}

type loginInput struct {
	Body credentialsBody
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	AccessToken string `json:"access_token" doc:"Bearer token, 15 минут"`
}
