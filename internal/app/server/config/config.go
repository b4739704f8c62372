package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	ErrNoSecret      = errors.New("JWT_SECRET is not set")
	ErrNoDatabaseURI = errors.New("DATABASE_URI is not set")
	ErrBadDriver     = errors.New("unknown DB_DRIVER")
	ErrBadThreads    = errors.New("ARGON2_THREADS must be in 1..255")
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Logger Logger
}

type DB struct {
	Driver      string `mapstructure:"db_driver"`
	DatabaseURI string `mapstructure:"database_uri"`
	Migrations  string `mapstructure:"migrations_path"`
}

type Server struct {
	RunAddress      string        `mapstructure:"run_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Auth содержит секрет подписи токенов и параметры argon2id.
type Auth struct {
	Secret         string        `mapstructure:"jwt_secret"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	Argon2Time     uint32        `mapstructure:"argon2_time"`
	Argon2MemoryKB uint32        `mapstructure:"argon2_memory_kib"`
	Argon2Threads  uint8         `mapstructure:"argon2_threads"`
}

type Logger struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load читает конфигурацию из окружения (и .env, если он есть).
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("run_address", ":8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("token_ttl", 15*time.Minute)
	v.SetDefault("argon2_time", 3)
	v.SetDefault("argon2_memory_kib", 64*1024)
	v.SetDefault("argon2_threads", 4)
}

func fromViper(v *viper.Viper) (*Config, error) {
	// uint8 в Auth: проверяем сырое значение до сужения
	threads := v.GetInt("argon2_threads")
	if threads < 1 || threads > math.MaxUint8 {
		return nil, fmt.Errorf("%w: got %q", ErrBadThreads, v.GetString("argon2_threads"))
	}

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      v.GetString("db_driver"),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Auth: Auth{
			Secret:         v.GetString("jwt_secret"),
			TokenTTL:       v.GetDuration("token_ttl"),
			Argon2Time:     v.GetUint32("argon2_time"),
			Argon2MemoryKB: v.GetUint32("argon2_memory_kib"),
			Argon2Threads:  uint8(threads),
		},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return ErrNoSecret
	}

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return ErrNoDatabaseURI
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrBadDriver, c.DB.Driver)
	}

	return nil
}
