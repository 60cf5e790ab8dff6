package resolver

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/log"
)

// Config selects the decorators applied by NewStack.
type Config struct {
	// Interval is the minimum spacing between upstream calls (0 disables).
	Interval time.Duration

	// Limiter, when set, replaces Interval. Share it with a base resolver
	// that sends several requests per lookup so those are spaced too.
	Limiter *rate.Limiter

	// Timeout bounds each upstream attempt (0 disables).
	Timeout time.Duration

	// MaxRetries is the number of extra attempts after a failure.
	MaxRetries int

	// BackoffInitial and BackoffMax tune the retry delays.
	BackoffInitial time.Duration
	BackoffMax     time.Duration

	// Repository persists the cache between runs (optional).
	Repository ports.CacheRepository

	Logger log.Logger
}

// NewStack wraps base as Cached -> Paced -> Retrying -> Deadline -> base.
func NewStack(base ports.LangLinkResolver, cfg Config) *Cached {
	var r ports.LangLinkResolver = NewDeadline(base, cfg.Timeout)
	r = NewRetrying(r, cfg.MaxRetries, cfg.BackoffInitial, cfg.BackoffMax, cfg.Logger)
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = NewLimiter(cfg.Interval)
	}
	r = NewPacedLimiter(r, limiter)
	return NewCached(r, cfg.Repository, cfg.Logger)
}
