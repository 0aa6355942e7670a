package arraylist

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives bounds and empty-state
// violations (warn) and buffer reallocations (debug).
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
