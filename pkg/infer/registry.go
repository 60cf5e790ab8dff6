package infer

import (
	"fmt"
	"strings"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/log"
)

// Name is the user-facing name of a rule.
type Name string

// Rule names accepted by Build.
const (
	NameWikivoyage          Name = "wikivoyage"
	NameDbpedia             Name = "dbpedia"
	NameWikipediaLangExpand Name = "wikipedia-language-expand"
)

// Names lists every registered rule name.
func Names() []Name {
	return []Name{NameWikivoyage, NameDbpedia, NameWikipediaLangExpand}
}

// ParseName resolves s to a registered Name.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	switch n {
	case NameWikivoyage, NameDbpedia, NameWikipediaLangExpand:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownRule, s)
}

// Deps carries what rules may need at construction time.
type Deps struct {
	// Lang is the default language for DbpediaToWikipedia.
	Lang string

	// Languages is the allowed set for WikipediaLangExpand.
	Languages []string

	// Resolver is required only by WikipediaLangExpand.
	Resolver ports.LangLinkResolver

	Logger log.Logger
}

// Build resolves names into rules, preserving order.
func Build(names []string, deps Deps) ([]Rule, error) {
	opts := []Option{WithLogger(deps.Logger)}

	rules := make([]Rule, 0, len(names))
	for _, s := range names {
		name, err := ParseName(s)
		if err != nil {
			return nil, err
		}
		switch name {
		case NameWikivoyage:
			rules = append(rules, NewWikivoyage(opts...))
		case NameDbpedia:
			rules = append(rules, NewDbpediaToWikipedia(deps.Lang, opts...))
		case NameWikipediaLangExpand:
			if deps.Resolver == nil {
				return nil, fmt.Errorf("rule %s: no language links resolver configured", name)
			}
			rules = append(rules, NewWikipediaLangExpand(deps.Resolver, deps.Languages, opts...))
		}
	}
	return rules, nil
}

// NeedsResolver reports whether any of names requires a LangLinkResolver.
func NeedsResolver(names []string) bool {
	for _, s := range names {
		if n, err := ParseName(s); err == nil && n == NameWikipediaLangExpand {
			return true
		}
	}
	return false
}
