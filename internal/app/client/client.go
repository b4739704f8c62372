package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"bookmarks/internal/app/client/config"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
)

type ctxKey string

// AppKey - ключ, под которым *App лежит в контексте cobra-команды.
const AppKey ctxKey = "app"

var ErrNoToken = errors.New("токен не найден. Выполните вход: bookmarks auth login")

type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	authenticated bool
	mu            sync.RWMutex
}

func New(cfg *config.Config, log *slog.Logger) *App {
	app := &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
	}

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil {
		app.httpClient.SetToken(token)
		app.authenticated = true
		log.Debug("Токен загружен из файла")
	}

	return app
}

// FromContext достаёт App, положенный корневой командой.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(AppKey).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated проверяет, есть ли сохраненный токен
func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SaveToken сохраняет токен аутентификации
func (a *App) SaveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(a.config.TokenPath), 0700); err != nil {
		return fmt.Errorf("ошибка создания каталога конфигурации: %w", err)
	}
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.mu.Lock()
	a.httpClient.SetToken(token)
	a.authenticated = true
	a.mu.Unlock()

	return nil
}

// ClearToken удаляет токен
func (a *App) ClearToken() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.authenticated = false
	a.httpClient.SetToken("")

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	return nil
}

// SignUp регистрирует нового пользователя
func (a *App) SignUp(ctx context.Context, creds user.Credentials) (user.User, error) {
	u, err := a.httpClient.SignUp(ctx, creds)
	if err != nil {
		return u, err
	}

	a.log.Info("Пользователь успешно зарегистрирован", "email", u.Email)
	return u, nil
}

// Login выполняет вход пользователя и сохраняет токен
func (a *App) Login(ctx context.Context, creds user.Credentials) error {
	token, err := a.httpClient.Login(ctx, creds)
	if err != nil {
		return err
	}

	if err = a.SaveToken(token); err != nil {
		return err
	}

	a.log.Info("Вход выполнен успешно", "email", creds.Email)
	return nil
}

func (a *App) Me(ctx context.Context) (user.User, error) {
	if err := a.requireAuth(); err != nil {
		return user.User{}, err
	}
	return a.httpClient.Me(ctx)
}

func (a *App) EditUser(ctx context.Context, req user.EditRequest) (user.User, error) {
	if err := a.requireAuth(); err != nil {
		return user.User{}, err
	}
	return a.httpClient.EditUser(ctx, req)
}

func (a *App) ListBookmarks(ctx context.Context) ([]bookmark.Bookmark, error) {
	if err := a.requireAuth(); err != nil {
		return nil, err
	}
	return a.httpClient.ListBookmarks(ctx)
}

func (a *App) GetBookmark(ctx context.Context, id int) (bookmark.Bookmark, error) {
	if err := a.requireAuth(); err != nil {
		return bookmark.Bookmark{}, err
	}
	return a.httpClient.GetBookmark(ctx, id)
}

func (a *App) CreateBookmark(ctx context.Context, req bookmark.CreateRequest) (bookmark.Bookmark, error) {
	if err := a.requireAuth(); err != nil {
		return bookmark.Bookmark{}, err
	}
	return a.httpClient.CreateBookmark(ctx, req)
}

func (a *App) EditBookmark(ctx context.Context, id int, req bookmark.EditRequest) (bookmark.Bookmark, error) {
	if err := a.requireAuth(); err != nil {
		return bookmark.Bookmark{}, err
	}
	return a.httpClient.EditBookmark(ctx, id, req)
}

func (a *App) DeleteBookmark(ctx context.Context, id int) (bookmark.Bookmark, error) {
	if err := a.requireAuth(); err != nil {
		return bookmark.Bookmark{}, err
	}
	return a.httpClient.DeleteBookmark(ctx, id)
}

func (a *App) requireAuth() error {
	if !a.IsAuthenticated() {
		return ErrNoToken
	}
	return nil
}
