package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "raahi/internal/delivery/context"
	"raahi/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormSlogLogger routes GORM output through slog. Queries issued inside a
// request log through that request's logger so they carry its request_id.
// Missing rows are an expected answer for alert lookups and are not logged.
type gormSlogLogger struct {
	fallback      *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger logs every statement in debug mode and only failures and
// slow statements otherwise.
func newGormSlogLogger(fallback *slog.Logger, debug bool, slowThreshold time.Duration) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		fallback:      fallback,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < min {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "Postgres: "+fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "Postgres query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "Postgres slow query", slog.Duration("slow_threshold", l.slowThreshold)
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "Postgres query"
	default:
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if l.fallback == nil {
		return deliverycontext.LoggerFrom(ctx, slog.Default())
	}

	return deliverycontext.LoggerFrom(ctx, l.fallback)
}
