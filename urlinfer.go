// Package urlinfer derives related URLs from Wikipedia, Wikivoyage and DBpedia
// URLs by applying a sequence of inference rules.
//
// Example usage:
//
//	rules := []urlinfer.Rule{
//	    urlinfer.NewWikivoyage(),
//	    urlinfer.NewDbpediaToWikipedia("en"),
//	}
//	urls := urlinfer.Infer(ctx, []string{"http://dbpedia.org/resource/Montreal"}, rules)
//
// The wikipedia-language-expand rule needs a LangLinkResolver; NewResolver
// returns one backed by the MediaWiki API.
package urlinfer

import (
	"context"
	"net/http"

	httpAdapter "github.com/jopela/urlinfer/internal/adapters/http"
	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/infer"
	"github.com/jopela/urlinfer/pkg/resolver"
)

// Rule transforms a URL list into another URL list.
type Rule = infer.Rule

// Name identifies a rule on the command line and in config files.
type Name = infer.Name

// Deps carries what Build needs to construct rules.
type Deps = infer.Deps

// LangLinkQuery asks for the versions of an article in other languages.
type LangLinkQuery = ports.LangLinkQuery

// LangLinkResolver looks up cross-language links.
type LangLinkResolver = ports.LangLinkResolver

// LangLinkResolverFunc adapts a function to LangLinkResolver.
type LangLinkResolverFunc = ports.LangLinkResolverFunc

// ResolverConfig tunes pacing, timeouts and retries of NewResolver.
type ResolverConfig = resolver.Config

// Rule names.
const (
	NameWikivoyage          = infer.NameWikivoyage
	NameDbpedia             = infer.NameDbpedia
	NameWikipediaLangExpand = infer.NameWikipediaLangExpand
)

// Infer composes rules like functions: Infer(urls, [a, b]) is a(b(urls)),
// so the last rule runs first. With no rules the input is returned unchanged.
func Infer(ctx context.Context, urls []string, rules []Rule) []string {
	return infer.Infer(ctx, urls, rules)
}

// Build constructs the rules named by names, keeping their order.
func Build(names []string, deps Deps) ([]Rule, error) {
	return infer.Build(names, deps)
}

// NewWikivoyage returns the rule adding Wikivoyage URLs.
func NewWikivoyage(opts ...infer.Option) Rule {
	return infer.NewWikivoyage(opts...)
}

// NewDbpediaToWikipedia returns the rule rewriting DBpedia URLs, with lang as
// the language of hosts that carry none.
func NewDbpediaToWikipedia(lang string, opts ...infer.Option) Rule {
	return infer.NewDbpediaToWikipedia(lang, opts...)
}

// NewWikipediaLangExpand returns the rule replacing each Wikipedia article by
// its versions in languages.
func NewWikipediaLangExpand(r LangLinkResolver, languages []string, opts ...infer.Option) Rule {
	return infer.NewWikipediaLangExpand(r, languages, opts...)
}

// NewResolver returns a cached, paced and retrying resolver querying the
// MediaWiki API of each source site. A nil client uses http.DefaultClient.
func NewResolver(client *http.Client, cfg ResolverConfig) LangLinkResolver {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Limiter == nil {
		cfg.Limiter = resolver.NewLimiter(cfg.Interval)
	}
	base := httpAdapter.NewLangLinkResolver(client,
		httpAdapter.WithPacer(cfg.Limiter),
		httpAdapter.WithLogger(cfg.Logger),
	)
	return resolver.NewStack(base, cfg)
}
