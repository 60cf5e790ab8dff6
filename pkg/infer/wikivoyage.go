package infer

import (
	"context"
	"strings"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/pkg/log"
)

const (
	wikipediaDomain  = "wikipedia"
	wikivoyageDomain = "wikivoyage"
)

// Wikivoyage casts Wikipedia URLs to Wikivoyage URLs.
//
// Every input URL is emitted unchanged. When its authority contains
// "wikipedia", a second URL follows with "wikipedia" replaced by "wikivoyage"
// in the authority only.
type Wikivoyage struct {
	logger log.Logger
}

// NewWikivoyage creates the Wikivoyage rule.
func NewWikivoyage(opts ...Option) *Wikivoyage {
	o := buildOptions(opts)
	return &Wikivoyage{logger: o.logger}
}

// Name implements Rule.
func (w *Wikivoyage) Name() Name { return NameWikivoyage }

// Apply implements Rule.
func (w *Wikivoyage) Apply(_ context.Context, urls []string) []string {
	res := make([]string, 0, len(urls))
	for _, u := range urls {
		res = append(res, u)

		parts, err := domain.Decompose(u)
		if err != nil {
			w.logger.Debug("passing through", log.String("rule", string(NameWikivoyage)), log.Err(err))
			continue
		}
		if !strings.Contains(parts.Authority, wikipediaDomain) {
			continue
		}
		res = append(res, domain.Recompose(parts.ReplaceInAuthority(wikipediaDomain, wikivoyageDomain)))
	}
	return res
}
