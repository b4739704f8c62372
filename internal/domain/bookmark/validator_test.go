package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.ValidateCreate(CreateRequest{Title: "Go", Link: "https://go.dev"}))
	assert.ErrorIs(t, v.ValidateCreate(CreateRequest{Title: "Go", Link: "nope"}), ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateCreate(CreateRequest{Link: "https://go.dev"}), ErrInvalidInput)

	assert.NoError(t, v.ValidateEdit(EditRequest{}))
	assert.ErrorIs(t, v.ValidateEdit(EditRequest{Title: strPtr("")}), ErrInvalidInput)
}
