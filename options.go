package linkedvec

import "log/slog"

type options struct {
	capacity int
	logger   *Logger
}

// Option configures a List at construction.
type Option func(*options)

// WithCapacity reserves room for n elements so the first n insertions do not
// reallocate the backing array.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger configures structured logging for bulk operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	l := linkedvec.New[int](linkedvec.WithLogger(linkedvec.NewJSONLogger(slog.LevelDebug)))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
