package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"danyowa/config"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Statements run inside a request
// or cron scope are logged with that scope's logger so they carry its request id.
type queryLogger struct {
	fallback      *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	ql := &queryLogger{
		fallback:      baseLogger.With(slog.String("store", "postgres")),
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return ql
	}

	if cfg.Env.Debug {
		ql.level = logger.Info
	}
	if cfg.Store.SlowQueryThreshold > 0 {
		ql.slowThreshold = cfg.Store.SlowQueryThreshold
	}

	return ql
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) emit(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < enabledAt {
		return
	}

	l.scoped(ctx).LogAttrs(ctx, level, "Postgres store message",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// Trace logs failed statements at error, slow ones at warn and everything else only at info.
// A missing row is the store's normal not-found path and is never logged.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case failed && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Subscription query failed", slog.String("error", err.Error())
	case slow && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow subscription query", slog.Duration("threshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Subscription query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) scoped(ctx context.Context) *slog.Logger {
	return ctxPkg.GetLoggerOrDefault(ctx, l.fallback)
}
