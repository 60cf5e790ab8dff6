package cliconfig

import "github.com/jopela/urlinfer/pkg/log"

// Logger returns the CLI logger: console output on stderr at the configured
// level. Stdout carries results only.
func Logger(level string) *log.ZerologAdapter {
	return log.NewZerologAdapter(log.ParseLevel(level))
}
