package seq

import (
	"context"

	"go.uber.org/zap"
)

type optionKey string

const (
	workerOptionKey optionKey = "worker_options"
	loggerOptionKey optionKey = "logger_options"
)

type workerOptions struct {
	maxCount int
}

// WithWorkers bounds the number of concurrent transformations run by
// TraverseAsync and MapStream.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

// Workers returns the bound set by WithWorkers, or defaultMaxWorkers when
// none was set or the stored value is not positive.
func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.maxCount > 0 {
		return options.maxCount
	}
	return defaultMaxWorkers
}

// WithLogger attaches the logger used by the stream helpers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerOptionKey, logger)
}

// Logger returns the logger attached by WithLogger or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerOptionKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
