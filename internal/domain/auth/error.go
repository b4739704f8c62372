package auth

import "errors"

// ErrInvalidCredentials одинакова для неизвестного email и неверного пароля.
var ErrInvalidCredentials = errors.New("invalid credentials")
