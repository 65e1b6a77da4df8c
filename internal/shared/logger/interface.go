package logger

import (
	"context"
	"log/slog"
)

// Interface is the logger every layer depends on.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface
	WithContext(ctx context.Context) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

type requestIDKey struct{}

// ContextWithRequestID stores the request id so WithContext can attach it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// slogLogger adapts *slog.Logger to Interface. The *w variants exist for
// call sites written against sugared loggers and take the same pairs.
type slogLogger struct {
	logger *slog.Logger
}

// NewLogger wraps the global logger configured by Init.
func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Interface {
	return NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func (l *slogLogger) log(level slog.Level, msg string, args []any) {
	l.logger.Log(context.Background(), level, msg, args...)
}

// fatal logs at error level and panics so deferred cleanup still runs.
func (l *slogLogger) fatal(msg string, args []any) {
	l.log(slog.LevelError, msg, args)
	panic("fatal: " + msg)
}

func (l *slogLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }
func (l *slogLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args) }
func (l *slogLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }
func (l *slogLogger) Fatal(msg string, args ...any) { l.fatal(msg, args) }

func (l *slogLogger) Debugw(msg string, kv ...interface{}) { l.log(slog.LevelDebug, msg, kv) }
func (l *slogLogger) Infow(msg string, kv ...interface{})  { l.log(slog.LevelInfo, msg, kv) }
func (l *slogLogger) Warnw(msg string, kv ...interface{})  { l.log(slog.LevelWarn, msg, kv) }
func (l *slogLogger) Errorw(msg string, kv ...interface{}) { l.log(slog.LevelError, msg, kv) }
func (l *slogLogger) Fatalw(msg string, kv ...interface{}) { l.fatal(msg, kv) }

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return l.With("logger", name)
}

// WithContext attaches the request id carried by ctx, if any.
func (l *slogLogger) WithContext(ctx context.Context) Interface {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}
