package digo

import (
	"go.uber.org/zap"
)

// options holds the configuration shared by a Registry and the Contexts it produces.
type options struct {
	logger            *zap.Logger
	runtimeCycleCheck bool
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger used for binding, validation and construction events.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRuntimeCycleCheck toggles the cycle check performed while constructing components.
// Graph validation in Registry.Context always runs, so cycles are still rejected when
// the runtime check is off.
func WithRuntimeCycleCheck(enabled bool) Option {
	return func(o *options) {
		o.runtimeCycleCheck = enabled
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:            zap.NewNop(),
		runtimeCycleCheck: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
