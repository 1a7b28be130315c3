package reconcile

import "go.uber.org/zap"

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	workers int
}

func defaultOptions() options {
	return options{logger: zap.NewNop(), workers: 1}
}

// WithLogger makes the engine log match statistics at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers scores source rows on n goroutines. Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
