package infer

import "context"

// Infer composes rules like functions: the last rule runs first and each
// earlier rule consumes the output of the one after it, so
// Infer(urls, [a, b, c]) is a(b(c(urls))). Write rules in the order one
// would write the composition:
//
//	Infer(ctx, urls, []Rule{NewWikivoyage(), NewDbpediaToWikipedia("en")})
//
// rewrites DBpedia URLs first, then adds the Wikivoyage URLs of the result.
// With no rules it returns urls unchanged.
func Infer(ctx context.Context, urls []string, rules []Rule) []string {
	out := urls
	for i := len(rules) - 1; i >= 0; i-- {
		out = rules[i].Apply(ctx, out)
	}
	return out
}
