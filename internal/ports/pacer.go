package ports

import "context"

// Pacer blocks until the next upstream request may be sent.
// *rate.Limiter from golang.org/x/time/rate satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}
