package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_EchoContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithRequestScope(context.Background(), "evt-42", logger)
	assert.Equal(t, "evt-42", GetRequestIDFromContext(ctx))

	scoped := GetLogger(ctx)
	require.NotNil(t, scoped)
	scoped.Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"evt-42"`)
}

func TestWithRequestScope_GeneratesID(t *testing.T) {
	ctx := WithRequestScope(context.Background(), "", slog.New(slog.DiscardHandler))

	assert.Len(t, GetRequestIDFromContext(ctx), 36)
}
