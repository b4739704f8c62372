package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestMiddleware_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "teapot",
		Method:      http.MethodGet,
		Path:        "/teapot",
		Middlewares: huma.Middlewares{New(log).Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return nil, huma.Error404NotFound("no tea")
	})

	resp := api.Get("/teapot")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "HTTP request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/teapot", entry["path"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
	assert.Equal(t, "INFO", entry["level"])
}
