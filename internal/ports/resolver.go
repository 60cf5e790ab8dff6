package ports

import "context"

// LangLinkQuery identifies an article and the languages to look it up in.
type LangLinkQuery struct {
	// Site is the host of the source wiki (e.g. "en.wikipedia.org").
	Site string

	// Title is the decoded article title (e.g. "Québec").
	Title string

	// Languages restricts the answer to these language codes.
	Languages []string
}

// LangLinkResolver returns, for each language of the query that has an
// article on the same subject, that article's URL.
// The order of the returned URLs is unspecified.
type LangLinkResolver interface {
	Resolve(ctx context.Context, q LangLinkQuery) ([]string, error)
}

// LangLinkResolverFunc adapts a function to LangLinkResolver.
type LangLinkResolverFunc func(ctx context.Context, q LangLinkQuery) ([]string, error)

// Resolve calls f(ctx, q).
func (f LangLinkResolverFunc) Resolve(ctx context.Context, q LangLinkQuery) ([]string, error) {
	return f(ctx, q)
}
