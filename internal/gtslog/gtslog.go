// Package gtslog is the CLI logging wrapper. The core
// (internal/store, internal/query, internal/compat, ...) never logs —
// every failure there surfaces as a typed error instead — and
// internal/docsource does not log either, so this package is only ever
// reached from cmd/gts.
package gtslog

import "go.uber.org/zap"

// New builds a *zap.Logger: development-formatted when verbose is true,
// production-formatted otherwise, falling back to a no-op logger if
// construction fails rather than letting a logging problem abort the
// CLI.
func New(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
