package logging

import (
	"context"
	"log/slog"
)

type ctxLogger struct{}

func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLogger{}, log)
}

// FromContext returns the request or connection scoped logger, falling back
// to the process default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLogger{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// With stores a child of the context logger carrying attrs.
func With(ctx context.Context, attrs ...slog.Attr) (context.Context, *slog.Logger) {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	log := FromContext(ctx).With(args...)
	return WithContext(ctx, log), log
}
