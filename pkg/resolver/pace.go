package resolver

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/jopela/urlinfer/internal/ports"
)

// DefaultInterval is the minimum spacing between two upstream lookups.
const DefaultInterval = 100 * time.Millisecond

// NewLimiter returns a limiter admitting one request per interval, with no
// burst. An interval <= 0 never blocks.
func NewLimiter(interval time.Duration) *rate.Limiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return rate.NewLimiter(limit, 1)
}

// Paced spaces consecutive calls to next by at least an interval.
//
// Paced spaces lookups, not HTTP requests. A resolver that sends several
// requests per lookup should wait on the same limiter between them (see
// NewPacedLimiter and the langlinks adapter's WithPacer).
type Paced struct {
	next    ports.LangLinkResolver
	limiter *rate.Limiter
}

// NewPaced creates a pacer. An interval <= 0 disables pacing.
func NewPaced(next ports.LangLinkResolver, interval time.Duration) *Paced {
	return NewPacedLimiter(next, NewLimiter(interval))
}

// NewPacedLimiter creates a pacer waiting on limiter, which may be shared
// with next.
func NewPacedLimiter(next ports.LangLinkResolver, limiter *rate.Limiter) *Paced {
	return &Paced{next: next, limiter: limiter}
}

// Resolve implements ports.LangLinkResolver.
func (p *Paced) Resolve(ctx context.Context, q ports.LangLinkQuery) ([]string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return p.next.Resolve(ctx, q)
}
