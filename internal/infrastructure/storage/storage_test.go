package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"bookmarks/internal/app/server/config"
	"bookmarks/internal/infrastructure/storage/memory"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.DB{Driver: config.DriverMemory}, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &memory.Storage{}, s)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DB{Driver: "sqlite"}, slog.Default())
	assert.ErrorIs(t, err, config.ErrBadDriver)
}
