// Package resolver wraps a ports.LangLinkResolver with the behavior a live
// lookup service needs: caching, pacing, retries and per-call deadlines.
//
// # Usage
//
//	base := http.NewLangLinkResolver(client, http.WithUserAgent(ua))
//	r := resolver.NewStack(base, resolver.Config{
//	    Interval:   100 * time.Millisecond,
//	    Timeout:    10 * time.Second,
//	    MaxRetries: 2,
//	})
//	defer r.Flush(ctx)
//
// The stack is Cached -> Paced -> Retrying -> Deadline -> base, so cache hits
// are answered without waiting for the pacer and without network access.
//
// Every decorator is safe for concurrent use.
package resolver
