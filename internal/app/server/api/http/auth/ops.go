package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signUpOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-sign-up",
		Method:        http.MethodPost,
		Path:          "/auth/sign-up",
		Summary:       "Регистрация пользователя",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusForbidden},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-login",
		Method:        http.MethodPost,
		Path:          "/auth/login",
		Summary:       "Авторизация пользователя",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusForbidden},
		Middlewares:   h.middleware,
	}
}
