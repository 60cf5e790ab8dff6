package ports

import "context"

// CacheRepository persists resolver answers keyed by query.
type CacheRepository interface {
	// Load returns every saved entry.
	// Returns an empty map and nil error if nothing was saved yet.
	Load(ctx context.Context) (map[string][]string, error)

	// Save replaces the saved entries atomically.
	Save(ctx context.Context, entries map[string][]string) error
}
