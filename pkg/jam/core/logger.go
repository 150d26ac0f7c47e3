package core

import (
	"context"
	"log/slog"
)

const LoggerOptionKey OptionKey = "logger"

var discard = slog.New(slog.DiscardHandler)

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// Logger returns the logger stored in ctx. Runs without one log nowhere.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}
