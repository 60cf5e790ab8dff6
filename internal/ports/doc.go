// Package ports defines the interfaces that connect the inference rules to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [LangLinkResolver]: looks up same-subject articles in other languages
//   - [CacheRepository]: persists resolver answers between runs
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [Pacer]: spaces upstream requests
//
// The rules in pkg/infer depend only on these interfaces. Adapters in
// internal/adapters implement them with HTTP and the file system, and the
// decorators in pkg/resolver wrap any LangLinkResolver with caching, pacing
// and retries.
package ports
