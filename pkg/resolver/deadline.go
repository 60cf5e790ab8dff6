package resolver

import (
	"context"
	"time"

	"github.com/jopela/urlinfer/internal/ports"
)

// Deadline bounds every call to next by a timeout.
type Deadline struct {
	next    ports.LangLinkResolver
	timeout time.Duration
}

// NewDeadline creates the decorator. A timeout <= 0 disables it.
func NewDeadline(next ports.LangLinkResolver, timeout time.Duration) *Deadline {
	return &Deadline{next: next, timeout: timeout}
}

// Resolve implements ports.LangLinkResolver.
func (d *Deadline) Resolve(ctx context.Context, q ports.LangLinkQuery) ([]string, error) {
	if d.timeout <= 0 {
		return d.next.Resolve(ctx, q)
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.next.Resolve(ctx, q)
}
