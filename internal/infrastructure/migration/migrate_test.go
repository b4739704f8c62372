package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookmarks/internal/app/server/config"
)

// MockMigrator - мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Down() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

var testDB = config.DB{DatabaseURI: "postgres://localhost/test", Migrations: "migrations"}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)

	// Настраиваем поведение
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSource, gotDB string
	// Инжектим мок через фабрику
	engine := func(source, db string) (Migrator, error) {
		gotSource, gotDB = source, db
		return mockM, nil
	}

	mg := NewMigration(testDB, engine)
	err := mg.Up()

	assert.NoError(t, err)
	assert.Equal(t, "file://migrations", gotSource)
	assert.Equal(t, testDB.DatabaseURI, gotDB)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testDB, engine).Up()

	assert.NoError(t, err)
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, errors.New("conn closed"))

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testDB, engine).Up()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
	assert.Contains(t, err.Error(), "conn closed")
}

func TestMigration_Down(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Down").Return(nil)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testDB, engine).Down()

	assert.NoError(t, err)
	mockM.AssertExpectations(t)
	mockM.AssertNotCalled(t, "Up")
}

func TestMigration_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testDB, engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Version(t *testing.T) {
	tests := []struct {
		name      string
		version   uint
		dirty     bool
		err       error
		wantVer   uint
		wantDirty bool
		wantErr   bool
	}{
		{name: "applied", version: 1, wantVer: 1},
		{name: "dirty", version: 2, dirty: true, wantVer: 2, wantDirty: true},
		{name: "empty database", err: migrate.ErrNilVersion},
		{name: "failure", err: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockM := new(MockMigrator)
			mockM.On("Version").Return(tt.version, tt.dirty, tt.err)
			mockM.On("Close").Return(nil, nil)

			mg := NewMigration(testDB, func(string, string) (Migrator, error) { return mockM, nil })
			ver, dirty, err := mg.Version()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantVer, ver)
				assert.Equal(t, tt.wantDirty, dirty)
			}
			mockM.AssertExpectations(t)
		})
	}
}
