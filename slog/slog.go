// Package slog provides logging decorators for adgen services. Each
// decorator logs one line per call: at Debug when the call succeeds and at
// Warn when it fails.
package slog

import (
	"context"
	"log/slog"
	"time"
)

// logCall logs a finished call with its duration and error.
func logCall(ctx context.Context, logger *slog.Logger, msg string, begin time.Time, err error, attrs ...slog.Attr) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	attrs = append(attrs, slog.Duration("duration", time.Since(begin)))
	logger.LogAttrs(ctx, level, msg, attrs...)
}
