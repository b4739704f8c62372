package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-me",
		Method:      http.MethodGet,
		Path:        "/users/me",
		Summary:     "Текущий пользователь",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) editOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-edit",
		Method:      http.MethodPatch,
		Path:        "/users",
		Summary:     "Изменить профиль",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden},
		Middlewares: h.middleware,
	}
}
