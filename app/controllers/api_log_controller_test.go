package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/logs", HandleAPILogSubmit)
	app.Get("/api/logs", HandleAPILogs)
	return app
}

// The error reporter must work on public screens, so ingest is
// unauthenticated.
func TestHandleAPILogSubmit_NoSessionRequired(t *testing.T) {
	stub := newStubUpstream(t, http.StatusOK, `{}`)
	app := newLogApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/logs",
		`{"level":"error","message":"boom","context":{"url":"/login"}}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Status string `json:"status"`
	}
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "ok", out.Status)

	assert.Equal(t, "/v1/logs/", stub.path)
	assert.Empty(t, stub.auth)
}

func TestHandleAPILogSubmit_UpstreamFailure(t *testing.T) {
	newStubUpstream(t, http.StatusServiceUnavailable, `{}`)
	app := newLogApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/logs", `{"level":"error","message":"boom"}`))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Failed to log to backend", responseMessage(t, resp.Body))
}

// Ingest is open to anonymous callers, so bad payloads must die here
// instead of being relayed.
func TestHandleAPILogSubmit_RejectsInvalidPayload(t *testing.T) {
	stub := newStubUpstream(t, http.StatusOK, `{}`)
	app := newLogApp()

	for name, body := range map[string]string{
		"unknown level":   `{"level":"fatal","message":"boom"}`,
		"missing message": `{"level":"error"}`,
		"not json":        `level=error`,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/logs", body))
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Invalid log entry", responseMessage(t, resp.Body))
		})
	}

	assert.EqualValues(t, 0, stub.calls.Load())
}

func TestHandleAPILogs_Unauthorized(t *testing.T) {
	stub := newStubUpstream(t, http.StatusOK, "log line")
	app := newLogApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/logs", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.EqualValues(t, 0, stub.calls.Load())
}

func TestHandleAPILogs_RelaysLogText(t *testing.T) {
	stub := newStubUpstream(t, http.StatusOK, "2026-09-01 INFO started\n2026-09-01 ERROR boom\n")
	app := newLogApp()

	req := withSessionCookie(httptest.NewRequest(fiber.MethodGet, "/api/logs", nil))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ERROR boom")
	assert.Equal(t, "Bearer tok", stub.auth)
}

// An upstream 404 means "no log file yet", which gets its own message.
func TestHandleAPILogs_NotFound(t *testing.T) {
	newStubUpstream(t, http.StatusNotFound, `{"detail":"Not Found"}`)
	app := newLogApp()

	req := withSessionCookie(httptest.NewRequest(fiber.MethodGet, "/api/logs", nil))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Log file not found", responseMessage(t, resp.Body))
}
