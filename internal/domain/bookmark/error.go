package bookmark

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("bookmark not found")
	ErrForbidden    = errors.New("access to resources denied")
	ErrInvalidInput = errors.New("invalid bookmark data")
)
