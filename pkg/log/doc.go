// Package log provides the logging abstraction used by urlinfer rules and
// resolvers.
//
// Rules report per-URL diagnostics (malformed input, resolver failures)
// through a Logger instead of returning them, so a single bad URL never
// aborts a batch. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(zerolog.InfoLevel)
//	logger = logger.With(log.String("run_id", id))
//
// Use the no-op logger in tests:
//
//	logger := log.NewNoopLogger()
package log
