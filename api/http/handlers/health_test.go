package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readinessFunc func(ctx context.Context) error

func (f readinessFunc) Ready(ctx context.Context) error { return f(ctx) }

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestHealthEndpoints(t *testing.T) {
	ready := NewHealthHandler(readinessFunc(func(context.Context) error { return nil }))
	notReady := NewHealthHandler(readinessFunc(func(context.Context) error { return errors.New("llm:gemini: 403") }))

	app := fiber.New()
	app.Get("/health", ready.Health)
	app.Get("/ready", ready.Ready)
	app.Get("/not-ready", notReady.Ready)

	status, body := getJSON(t, app, "/health")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])

	status, body = getJSON(t, app, "/ready")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ready", body["status"])

	status, body = getJSON(t, app, "/not-ready")
	assert.Equal(t, 503, status)
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, "llm:gemini: 403", body["details"])
}
