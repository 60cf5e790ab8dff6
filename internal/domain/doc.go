// Package domain contains the value types and sentinel errors shared by the
// URL inference rules.
//
// This package is the innermost layer of urlinfer. It has no dependencies on
// infrastructure concerns (HTTP, file system, logging) and contains only pure
// string handling.
//
// # Types
//
//   - [Parts]: a URL split into scheme, authority, path, query and fragment
//     without any re-encoding, so that [Recompose] reproduces the input byte
//     for byte
//
// # Authority helpers
//
// An authority may carry a leading language label ("en" in en.wikipedia.org).
// [Parts.Labels], [Parts.WithLanguage] and [Parts.Language] operate on the host
// part only; userinfo and port are preserved around it.
package domain
