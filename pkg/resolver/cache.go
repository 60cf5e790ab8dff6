package resolver

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/log"
)

// Cached memoizes successful lookups per (site, title, languages).
// Concurrent lookups of the same key share one upstream call, which is not
// canceled when the caller that started it gives up. Failures are never
// cached.
type Cached struct {
	next   ports.LangLinkResolver
	repo   ports.CacheRepository
	logger log.Logger

	mu      sync.RWMutex
	entries map[string][]string
	dirty   bool

	group singleflight.Group
}

// NewCached creates a cache in front of next. repo may be nil, in which case
// entries live only in memory.
func NewCached(next ports.LangLinkResolver, repo ports.CacheRepository, logger log.Logger) *Cached {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Cached{
		next:    next,
		repo:    repo,
		logger:  logger,
		entries: make(map[string][]string),
	}
}

// CacheKey returns the key under which the answer to q is stored.
// Language order does not matter.
func CacheKey(q ports.LangLinkQuery) string {
	langs := slices.Clone(q.Languages)
	slices.Sort(langs)
	langs = slices.Compact(langs)
	return q.Site + "|" + q.Title + "|" + strings.Join(langs, ",")
}

// Resolve implements ports.LangLinkResolver.
func (c *Cached) Resolve(ctx context.Context, q ports.LangLinkQuery) ([]string, error) {
	key := CacheKey(q)

	c.mu.RLock()
	found, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.logger.Debug("cache hit", log.String("key", key))
		return slices.Clone(found), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The shared lookup outlives any single caller: it runs detached from
	// cancellation (per-attempt deadlines still apply below) and each caller
	// stops waiting when its own ctx is done.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// A flight for key may have completed since the read above.
		c.mu.RLock()
		found, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return found, nil
		}

		found, err := c.next.Resolve(shared, q)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = slices.Clone(found)
		c.dirty = true
		c.mu.Unlock()
		return found, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]string)), nil
	}
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Load merges the repository's entries into the cache.
func (c *Cached) Load(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}
	entries, err := c.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cache: %w", err)
	}
	c.mu.Lock()
	for k, v := range entries {
		if _, ok := c.entries[k]; !ok {
			c.entries[k] = v
		}
	}
	c.mu.Unlock()
	c.logger.Debug("cache loaded", log.Int("entries", len(entries)))
	return nil
}

// Flush saves the cache to the repository if anything was added since the
// last Load or Flush.
func (c *Cached) Flush(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	if err := c.repo.Save(ctx, c.entries); err != nil {
		return fmt.Errorf("save cache: %w", err)
	}
	c.dirty = false
	c.logger.Debug("cache saved", log.Int("entries", len(c.entries)))
	return nil
}
