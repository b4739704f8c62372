package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"bookmarks/cmd/client/cmd/auth"
	"bookmarks/cmd/client/cmd/bookmark"
	"bookmarks/cmd/client/cmd/user"
	"bookmarks/internal/app/client"
	"bookmarks/internal/app/client/config"
	"bookmarks/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Bookmarks - клиент сервиса закладок",
	Long: `Bookmarks - консольный клиент для сервиса закладок.

Регистрация и вход, просмотр профиля и управление своими закладками.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if debug {
		log = logger.New(cfg.Env)
	}

	app := client.New(cfg, log)
	cmd.SetContext(context.WithValue(cmd.Context(), client.AppKey, app))

	return nil
}

func loadConfig() (*config.Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".bookmarks"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load(v)
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().Bool("json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера (host:port)")

	auth.AuthCmd.AddCommand(auth.SignUpCmd, auth.LoginCmd, auth.LogoutCmd)
	user.UserCmd.AddCommand(user.MeCmd, user.EditCmd)
	bookmark.BookmarkCmd.AddCommand(
		bookmark.ListCmd,
		bookmark.GetCmd,
		bookmark.CreateCmd,
		bookmark.EditCmd,
		bookmark.DeleteCmd,
	)

	rootCmd.AddCommand(auth.AuthCmd, user.UserCmd, bookmark.BookmarkCmd)
}
