package bookmark

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-list",
		Method:      http.MethodGet,
		Path:        "/bookmarks",
		Summary:     "Список закладок пользователя",
		Tags:        []string{"bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-find",
		Method:      http.MethodGet,
		Path:        "/bookmarks/{id}",
		Summary:     "Получить закладку",
		Description: "Чужая закладка неотличима от несуществующей: 404.",
		Tags:        []string{"bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "bookmarks-create",
		Method:        http.MethodPost,
		Path:          "/bookmarks",
		Summary:       "Создать закладку",
		Tags:          []string{"bookmarks"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) editOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-edit",
		Method:      http.MethodPatch,
		Path:        "/bookmarks/{id}",
		Summary:     "Изменить закладку",
		Tags:        []string{"bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-delete",
		Method:      http.MethodDelete,
		Path:        "/bookmarks/{id}",
		Summary:     "Удалить закладку",
		Tags:        []string{"bookmarks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Errors:      []int{http.StatusUnauthorized, http.StatusForbidden},
		Middlewares: h.middleware,
	}
}
