package infer

import (
	"context"
	"fmt"
	"strings"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/pkg/log"
)

const (
	dbpediaDomain = "dbpedia"
	wikiSegment   = "wiki"
)

// DbpediaToWikipedia rewrites DBpedia resource URLs to Wikipedia article URLs.
//
// A DBpedia host without a language label (dbpedia.org) first receives the
// default language (en.dbpedia.org). Then "dbpedia" becomes "wikipedia" in
// the authority and the resource-type segment becomes "wiki":
//
//	http://dbpedia.org/resource/Montreal -> http://en.wikipedia.org/wiki/Montreal
//
// URLs without "dbpedia" in the authority pass through untouched. In
// particular the default language is only assigned to DBpedia hosts: a
// two-label host such as example.org keeps its authority, since prefixing it
// would invent a host that no later rule rewrites.
type DbpediaToWikipedia struct {
	lang   string
	logger log.Logger
}

// NewDbpediaToWikipedia creates the rule with lang as the default language.
func NewDbpediaToWikipedia(lang string, opts ...Option) *DbpediaToWikipedia {
	o := buildOptions(opts)
	return &DbpediaToWikipedia{
		lang:   strings.ToLower(strings.TrimSpace(lang)),
		logger: o.logger,
	}
}

// Name implements Rule.
func (d *DbpediaToWikipedia) Name() Name { return NameDbpedia }

// Apply implements Rule.
func (d *DbpediaToWikipedia) Apply(_ context.Context, urls []string) []string {
	res := make([]string, 0, len(urls))
	for _, u := range urls {
		out, err := d.rewrite(u)
		if err != nil {
			d.logger.Debug("passing through",
				log.String("rule", string(NameDbpedia)),
				log.String("url", u),
				log.Err(err),
			)
			res = append(res, u)
			continue
		}
		res = append(res, out)
	}
	return res
}

func (d *DbpediaToWikipedia) rewrite(u string) (string, error) {
	parts, err := domain.Decompose(u)
	if err != nil {
		return "", err
	}
	if !strings.Contains(parts.Authority, dbpediaDomain) {
		return u, nil
	}

	segments := parts.Segments()
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: %q", domain.ErrShortPath, parts.Path)
	}

	if len(parts.Labels()) != 3 && d.lang != "" {
		parts = parts.WithLanguage(d.lang)
	}

	parts = parts.ReplaceInAuthority(dbpediaDomain, wikipediaDomain)
	segments[1] = wikiSegment
	parts.Path = strings.Join(segments, "/")

	return domain.Recompose(parts), nil
}
