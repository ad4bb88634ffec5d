package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is unexported so only this package can place loggers in a context.
type ctxKey int

const loggerCtxKey ctxKey = iota

// WithLogger attaches logger to ctx. Discovery and the runner workers pick
// it up with FromContext so per-file log lines honor the level chosen on
// the command line.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// FromContext returns the logger attached to ctx, or the process-wide
// default when ctx carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
