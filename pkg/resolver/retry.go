package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/log"
)

// Retrying retries failed lookups with exponential backoff.
// domain.ErrPageNotFound is final and never retried.
type Retrying struct {
	next       ports.LangLinkResolver
	maxRetries int
	initial    time.Duration
	max        time.Duration
	logger     log.Logger
}

// NewRetrying allows up to maxRetries additional attempts per lookup.
// Zero durations select the package defaults.
func NewRetrying(next ports.LangLinkResolver, maxRetries int, initial, max time.Duration, logger log.Logger) *Retrying {
	if initial <= 0 {
		initial = DefaultBackoffInitial
	}
	if max <= 0 {
		max = DefaultBackoffMax
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Retrying{
		next:       next,
		maxRetries: maxRetries,
		initial:    initial,
		max:        max,
		logger:     logger,
	}
}

// Resolve implements ports.LangLinkResolver.
func (r *Retrying) Resolve(ctx context.Context, q ports.LangLinkQuery) ([]string, error) {
	b := newBackoff(r.initial, r.max)
	for attempt := 0; ; attempt++ {
		found, err := r.next.Resolve(ctx, q)
		if err == nil {
			return found, nil
		}
		if errors.Is(err, domain.ErrPageNotFound) || attempt >= r.maxRetries || ctx.Err() != nil {
			return nil, err
		}

		r.logger.Debug("retrying lookup",
			log.String("title", q.Title),
			log.Int("attempt", attempt+1),
			log.Duration("backoff", b.Current()),
			log.Err(err),
		)
		if serr := b.Sleep(ctx); serr != nil {
			return nil, err
		}
	}
}
