//регистрация и вход пользователей;
//хранение закладок, каждая принадлежит одному пользователю;
//изменять и удалять закладку может только её владелец.

//GET    /health            # Проверка (публичный)
//POST   /auth/sign-up      # Регистрация (публичный)
//POST   /auth/login        # Логин (публичный)
//GET    /users/me          # Текущий пользователь (auth)
//PATCH  /users             # Изменить профиль (auth)
//GET    /bookmarks         # Список закладок (auth)
//POST   /bookmarks         # Создать закладку (auth)
//GET    /bookmarks/{id}    # Получить закладку (auth)
//PATCH  /bookmarks/{id}    # Изменить закладку (auth, владелец)
//DELETE /bookmarks/{id}    # Удалить закладку (auth, владелец)

package api

import (
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	authAPI "bookmarks/internal/app/server/api/http/auth"
	bookmarkAPI "bookmarks/internal/app/server/api/http/bookmark"
	healthAPI "bookmarks/internal/app/server/api/http/health"
	"bookmarks/internal/app/server/api/http/middleware"
	authMW "bookmarks/internal/app/server/api/http/middleware/auth"
	"bookmarks/internal/app/server/api/http/middleware/logger"
	userAPI "bookmarks/internal/app/server/api/http/user"
	"bookmarks/internal/app/server/config"
	"bookmarks/internal/app/server/crypto"
	"bookmarks/internal/domain/auth"
	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/token"
	"bookmarks/internal/domain/user"
	"bookmarks/internal/infrastructure/storage"
)

var errorMappingOnce sync.Once

// installErrorMapping подменяет глобальный huma.NewError: ошибки валидации
// входа отдаём как 400, а не 422. Действует на весь процесс, ставится один раз.
func installErrorMapping() {
	errorMappingOnce.Do(func() {
		newError := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			return newError(status, msg, errs...)
		}
	})
}

type Handlers struct {
	Health   *healthAPI.Handler
	Auth     *authAPI.Handler
	User     *userAPI.Handler
	Bookmark *bookmarkAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register.
// Первый вызов также включает отображение 422 -> 400 (см. installErrorMapping).
func New(store storage.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	installErrorMapping()

	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	humaConfig := huma.DefaultConfig("Bookmarks API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(API, store, cfg, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Bookmark.SetupRoutes(API)

	return mux
}

func handlers(API huma.API, store storage.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	hasher := crypto.NewPasswordHasher(crypto.Params{
		Time:     cfg.Auth.Argon2Time,
		MemoryKB: cfg.Auth.Argon2MemoryKB,
		Threads:  cfg.Auth.Argon2Threads,
	})
	issuer := token.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL, log)
	validator := user.NewRequestValidator()

	userService := user.NewService(store.Users(), validator, log)
	authService := auth.NewService(userService, hasher, issuer, validator, log)
	bookmarkService := bookmark.NewService(store.Bookmarks(), bookmark.NewRequestValidator(), log)

	guard := authMW.New(API, authService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	authHandler := authAPI.NewHandler(authService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), guard.Middleware())
	userHandler := userAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), guard.Middleware())
	bookmarkHandler := bookmarkAPI.NewHandler(bookmarkService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Auth:     authHandler,
		User:     userHandler,
		Bookmark: bookmarkHandler,
	}
}
