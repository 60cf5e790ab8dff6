package infer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/log"
)

// DefaultLanguages is the language set used when none is configured.
var DefaultLanguages = []string{"en", "fr", "de", "es", "it", "pt", "ru", "ja", "zh", "nl", "pl", "sv"}

// WikipediaLangExpand replaces each Wikipedia URL with the URLs of the same
// article in the configured languages, as reported by a LangLinkResolver.
//
// The order of the URLs produced for one input is the resolver's and is
// unspecified. Outputs of different inputs follow input order.
// A resolver failure drops that input's contribution and is logged.
type WikipediaLangExpand struct {
	resolver  ports.LangLinkResolver
	languages []string
	logger    log.Logger
}

// NewWikipediaLangExpand creates the rule. An empty languages list selects
// DefaultLanguages.
func NewWikipediaLangExpand(resolver ports.LangLinkResolver, languages []string, opts ...Option) *WikipediaLangExpand {
	o := buildOptions(opts)
	return &WikipediaLangExpand{
		resolver:  resolver,
		languages: NormalizeLanguages(languages),
		logger:    o.logger,
	}
}

// Name implements Rule.
func (e *WikipediaLangExpand) Name() Name { return NameWikipediaLangExpand }

// Languages returns a copy of the configured language set.
func (e *WikipediaLangExpand) Languages() []string {
	return append([]string(nil), e.languages...)
}

// Apply implements Rule.
func (e *WikipediaLangExpand) Apply(ctx context.Context, urls []string) []string {
	var res []string
	for _, u := range urls {
		parts, err := domain.Decompose(u)
		if err != nil {
			e.logger.Warn("skipping url", log.String("url", u), log.Err(err))
			continue
		}
		title, err := TitleFromURL(parts)
		if err != nil {
			e.logger.Warn("skipping url", log.String("url", u), log.Err(err))
			continue
		}

		found, err := e.resolver.Resolve(ctx, ports.LangLinkQuery{
			Site:      parts.Host(),
			Title:     title,
			Languages: e.languages,
		})
		if err != nil {
			e.logger.Warn("language links lookup failed",
				log.String("url", u),
				log.String("title", title),
				log.Err(fmt.Errorf("%w: %w", domain.ErrResolverFailure, err)),
			)
			continue
		}
		e.logger.Debug("language links resolved", log.String("title", title), log.Int("count", len(found)))
		res = append(res, found...)
	}
	if res == nil {
		res = []string{}
	}
	return res
}

// TitleFromURL returns the last path segment of p, percent-decoded and in
// Unicode normalization form C.
func TitleFromURL(p domain.Parts) (string, error) {
	seg := p.LastSegment()
	if seg == "" {
		return "", fmt.Errorf("%w: no title in path %q", domain.ErrMalformedURL, p.Path)
	}
	title, err := url.PathUnescape(seg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedURL, err)
	}
	return norm.NFC.String(title), nil
}

// NormalizeLanguages lowercases, trims and deduplicates codes, keeping the
// first occurrence order. An empty result selects DefaultLanguages.
func NormalizeLanguages(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultLanguages...)
	}
	return out
}
