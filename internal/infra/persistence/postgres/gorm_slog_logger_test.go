package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"danyowa/config"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestQueryLogger(t *testing.T, cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), buf
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "subscriptions"`, 2
}

func TestQueryLogger_FailedQueryLoggedAtError(t *testing.T) {
	ql, buf := newTestQueryLogger(t, &config.Config{})

	ql.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection refused"))

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.Equal(t, "connection refused", lines[0]["error"])
	assert.Equal(t, "postgres", lines[0]["store"])
}

func TestQueryLogger_RecordNotFoundIsSilent(t *testing.T) {
	ql, buf := newTestQueryLogger(t, &config.Config{})

	ql.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_SlowQueryUsesConfiguredThreshold(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.SlowQueryThreshold = time.Millisecond
	ql, buf := newTestQueryLogger(t, cfg)

	ql.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "Slow subscription query", lines[0]["msg"])
}

func TestQueryLogger_FastQueryOnlyLoggedInDebug(t *testing.T) {
	ql, buf := newTestQueryLogger(t, &config.Config{})
	ql.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	ql, buf = newTestQueryLogger(t, cfg)
	ql.Trace(context.Background(), time.Now(), sqlFn, nil)

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.InDelta(t, 2, lines[0]["rows"], 0)
}

func TestQueryLogger_UsesRequestScopedLogger(t *testing.T) {
	ql, _ := newTestQueryLogger(t, &config.Config{})

	scopedBuf := &bytes.Buffer{}
	scoped := slog.New(slog.NewJSONHandler(scopedBuf, nil))
	ctx := ctxPkg.WithRequestScope(context.Background(), "req-42", scoped)

	ql.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	lines := decodeLogLines(t, scopedBuf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-42", lines[0]["request_id"])
}

func TestQueryLogger_SilentModeDropsEverything(t *testing.T) {
	ql, buf := newTestQueryLogger(t, &config.Config{})

	ql.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
