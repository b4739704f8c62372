package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"bookmarks/internal/app/server/config"
)

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// MigrationEngine - фабрика мигратора, в тестах подменяется моком
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    config.DB
	engine MigrationEngine
}

func NewMigration(conf config.DB, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine - реальная реализация для продакшена
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up применяет все новые миграции.
func (mg *Migration) Up() error {
	return mg.run("up", Migrator.Up)
}

// Down откатывает все миграции.
func (mg *Migration) Down() error {
	return mg.run("down", Migrator.Down)
}

// Version возвращает номер последней применённой миграции и флаг dirty.
// Пустая база даёт 0.
func (mg *Migration) Version() (version uint, dirty bool, err error) {
	err = mg.with(func(m Migrator) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		if verr != nil {
			return fmt.Errorf("migration version: %w", verr)
		}
		return nil
	})
	return version, dirty, err
}

func (mg *Migration) run(direction string, step func(Migrator) error) error {
	return mg.with(func(m Migrator) error {
		if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration %s: %w", direction, err)
		}
		return nil
	})
}

// with opens the engine, runs fn and merges Close errors into the result.
func (mg *Migration) with(fn func(Migrator) error) (err error) {
	m, err := mg.engine("file://"+mg.cfg.Migrations, mg.cfg.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	return fn(m)
}
