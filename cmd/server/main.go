package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bookmarks/internal/app/server"
	"bookmarks/internal/app/server/config"
	"bookmarks/internal/infrastructure/migration"
	"bookmarks/internal/utils/logger"
)

var rootCmd = &cobra.Command{
	Use:           "bookmarks-server",
	Short:         "Bookmarks - сервер закладок",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Миграции базы данных",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadPostgresConfig()
		if err != nil {
			return err
		}
		return migration.NewMigration(cfg.DB, migration.DefaultEngine).Up()
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить все миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadPostgresConfig()
		if err != nil {
			return err
		}
		return migration.NewMigration(cfg.DB, migration.DefaultEngine).Down()
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Показать текущую версию схемы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadPostgresConfig()
		if err != nil {
			return err
		}
		version, dirty, err := migration.NewMigration(cfg.DB, migration.DefaultEngine).Version()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %t\n", version, dirty)
		return nil
	},
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	log.Info("starting bookmarks", "env", cfg.Env, "driver", cfg.DB.Driver)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg, log)
}

func loadPostgresConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.DB.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("migrations need DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.DB.Driver)
	}
	return cfg, nil
}

func main() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}
