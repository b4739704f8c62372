package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/config"
)

// New возвращает логгер под окружение: local - цветной вывод,
// dev - JSON с debug, prod - JSON начиная с info.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel is New with an explicit minimum level (LOG_LEVEL).
// An empty or unknown level keeps the environment default.
func NewWithLevel(env, level string) *slog.Logger {
	lvl := defaultLevel(env)
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lvl = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch env {
	case config.EnvDev, config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	default:
		return slog.New(PrettyHandlerOptions{SlogOpts: opts}.NewPrettyHandler(os.Stdout))
	}
}

func defaultLevel(env string) slog.Level {
	if env == config.EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// Err is a shortcut for the "error" attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
