package user

import (
	"fmt"

	"bookmarks/internal/utils/validation"
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateCredentials(c Credentials) error
	ValidateEdit(r EditRequest) error
}

type RequestValidator struct {
	v *validation.Validator
}

// NewRequestValidator создает новый валидатор
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{v: validation.New()}
}

// ValidateCredentials валидирует данные для регистрации и входа
func (rv *RequestValidator) ValidateCredentials(c Credentials) error {
	if err := rv.v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ValidateEdit валидирует частичное обновление профиля
func (rv *RequestValidator) ValidateEdit(r EditRequest) error {
	if err := rv.v.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
