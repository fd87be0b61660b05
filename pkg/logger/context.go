package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With stores a logger carrying fields in ctx. Fields accumulate across calls.
// A nil ctx is treated as context.Background.
func With(ctx context.Context, fields ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, From(ctx).With(fields...))
}

// From returns the logger stored in ctx, falling back to LoggerWrapper.
func From(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return LoggerWrapper()
}
