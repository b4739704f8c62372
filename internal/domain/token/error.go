package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrExpired      = fmt.Errorf("%w: token expired", ErrUnauthorized)
)
