package domain

import "errors"

// Domain errors represent error conditions in urlinfer.
// These errors can be checked with errors.Is.
var (
	// ErrMalformedURL is returned when a string has no scheme://authority structure.
	ErrMalformedURL = errors.New("urlinfer: malformed url")

	// ErrShortPath marks a dbpedia URL whose path has no resource-type segment.
	// Rules treat it as a pass-through, never as a failure.
	ErrShortPath = errors.New("urlinfer: path too short")

	// ErrResolverFailure wraps any failure of the cross-language-link lookup.
	ErrResolverFailure = errors.New("urlinfer: resolver failure")

	// ErrPageNotFound is returned by a resolver when the title does not exist.
	ErrPageNotFound = errors.New("urlinfer: page not found")

	// ErrUnknownRule is returned when a rule name is not in the registry.
	ErrUnknownRule = errors.New("urlinfer: unknown rule")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("urlinfer: invalid configuration")
)
