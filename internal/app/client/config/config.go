package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "local"
	defaultConfigDir     = ".bookmarks"
	defaultTimeout       = 30
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	ServerAddress  string `mapstructure:"server_address"`
	ConfigDir      string `mapstructure:"config_dir"`
	TokenPath      string `mapstructure:"token_path"`
	EnableTLS      bool   `mapstructure:"enable_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Load загружает конфигурацию клиента из окружения, .env и файла config.yaml,
// если он передан в v.
func Load(v *viper.Viper) (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	if v == nil {
		v = viper.New()
	}
	v.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("config_dir", defaultConfigDir)
	v.SetDefault("enable_tls", false)
	v.SetDefault("timeout_seconds", defaultTimeout)

	configDir := v.GetString("config_dir")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	tokenPath := v.GetString("token_path")
	if tokenPath == "" {
		tokenPath = filepath.Join(configDir, "token")
	}

	cfg := &Config{
		Env:            v.GetString("app_env"),
		ServerAddress:  v.GetString("server_address"),
		ConfigDir:      configDir,
		TokenPath:      tokenPath,
		EnableTLS:      v.GetBool("enable_tls"),
		TimeoutSeconds: v.GetInt("timeout_seconds"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds должен быть положительным")
	}
	return nil
}

// BaseURL собирает адрес сервера со схемой.
func (c *Config) BaseURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}
