package bookmark

import (
	"fmt"

	"bookmarks/internal/utils/validation"
)

// Validator проверяет входные данные закладок
type Validator interface {
	ValidateCreate(r CreateRequest) error
	ValidateEdit(r EditRequest) error
}

type RequestValidator struct {
	v *validation.Validator
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{v: validation.New()}
}

func (rv *RequestValidator) ValidateCreate(r CreateRequest) error {
	if err := rv.v.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (rv *RequestValidator) ValidateEdit(r EditRequest) error {
	if err := rv.v.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
