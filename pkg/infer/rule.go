package infer

import (
	"context"

	"github.com/jopela/urlinfer/pkg/log"
)

// Rule is a stateless transformation over an ordered list of URLs.
// Implementations must not modify the input slice.
type Rule interface {
	// Name returns the registry name of the rule.
	Name() Name

	// Apply transforms urls. Per-URL problems are logged, never returned.
	Apply(ctx context.Context, urls []string) []string
}

// Option configures optional behavior of a rule.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger receiving per-URL diagnostics.
// If not provided, diagnostics are discarded.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
