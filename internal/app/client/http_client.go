package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"bookmarks/internal/app/client/config"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
)

// ErrUnauthorized - сервер отклонил токен или токен отсутствует.
var ErrUnauthorized = errors.New("требуется вход: bookmarks auth login")

// APIError - ошибка, полученная от сервера в формате application/problem+json.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if len(e.Errors) > 0 {
		parts := make([]string, 0, len(e.Errors))
		for _, d := range e.Errors {
			if d.Location != "" {
				parts = append(parts, d.Location+": "+d.Message)
				continue
			}
			parts = append(parts, d.Message)
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	return fmt.Sprintf("ошибка сервера [%d]: %s", e.Status, msg)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "Bookmarks-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) SignUp(ctx context.Context, creds user.Credentials) (user.User, error) {
	var u user.User
	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/sign-up", creds)
	if err != nil {
		return u, err
	}
	err = h.parseResponse(resp, &u)
	return u, err
}

func (h *httpClient) Login(ctx context.Context, creds user.Credentials) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}
	if loginResp.AccessToken == "" {
		return "", fmt.Errorf("сервер не вернул токен")
	}

	return loginResp.AccessToken, nil
}

func (h *httpClient) Me(ctx context.Context) (user.User, error) {
	var u user.User
	resp, err := h.doRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return u, err
	}
	err = h.parseResponse(resp, &u)
	return u, err
}

func (h *httpClient) EditUser(ctx context.Context, req user.EditRequest) (user.User, error) {
	var u user.User
	resp, err := h.doRequest(ctx, http.MethodPatch, "/users", req)
	if err != nil {
		return u, err
	}
	err = h.parseResponse(resp, &u)
	return u, err
}

func (h *httpClient) ListBookmarks(ctx context.Context) ([]bookmark.Bookmark, error) {
	var list []bookmark.Bookmark
	resp, err := h.doRequest(ctx, http.MethodGet, "/bookmarks", nil)
	if err != nil {
		return nil, err
	}
	err = h.parseResponse(resp, &list)
	return list, err
}

func (h *httpClient) GetBookmark(ctx context.Context, id int) (bookmark.Bookmark, error) {
	return h.bookmarkCall(ctx, http.MethodGet, id, nil)
}

func (h *httpClient) CreateBookmark(ctx context.Context, req bookmark.CreateRequest) (bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	resp, err := h.doRequest(ctx, http.MethodPost, "/bookmarks", req)
	if err != nil {
		return b, err
	}
	err = h.parseResponse(resp, &b)
	return b, err
}

func (h *httpClient) EditBookmark(ctx context.Context, id int, req bookmark.EditRequest) (bookmark.Bookmark, error) {
	return h.bookmarkCall(ctx, http.MethodPatch, id, req)
}

func (h *httpClient) DeleteBookmark(ctx context.Context, id int) (bookmark.Bookmark, error) {
	return h.bookmarkCall(ctx, http.MethodDelete, id, nil)
}

func (h *httpClient) bookmarkCall(ctx context.Context, method string, id int, body interface{}) (bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	resp, err := h.doRequest(ctx, method, "/bookmarks/"+strconv.Itoa(id), body)
	if err != nil {
		return b, err
	}
	err = h.parseResponse(resp, &b)
	return b, err
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

const redacted = "[скрыто]"

// loggedBody не пускает в лог ответы /auth/*: в них access_token.
func loggedBody(req *http.Request, body []byte) string {
	if req != nil && req.URL != nil && strings.HasPrefix(req.URL.Path, "/auth/") {
		return redacted
	}
	return string(body)
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", loggedBody(resp.Request, body),
	)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil {
			apiErr = &APIError{}
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
