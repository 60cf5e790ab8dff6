// Package infer derives related URLs from source URLs by chaining rewrite
// rules between Wikipedia, Wikivoyage and DBpedia.
//
// A [Rule] maps an ordered list of URLs to a new ordered list. Three rules are
// provided:
//
//   - [Wikivoyage]: emits each URL and, for Wikipedia hosts, the matching
//     Wikivoyage URL
//   - [DbpediaToWikipedia]: rewrites DBpedia resource URLs to Wikipedia
//     article URLs, assigning a default language when the host has none
//   - [WikipediaLangExpand]: asks a [ports.LangLinkResolver] for the same
//     article in other languages
//
// [Infer] applies rules left to right, feeding each rule's output to the next.
// Nothing is deduplicated or sorted.
//
// # Errors
//
// Rules never fail as a whole. A URL that cannot be handled is passed through
// or skipped, and the reason is reported to the configured logger.
//
// # Rule names
//
// [Build] resolves user-facing names ("wikivoyage", "dbpedia",
// "wikipedia-language-expand") into rule values through a fixed table.
package infer
