// Package logger provides structured logging for imgfetch.
//
// It wraps zerolog behind a small Logger interface so that components can
// take a logger as a dependency and tests can substitute NewNopLogger or
// NewTestLogger. Human-facing console output lives in package ui; this
// package writes diagnostics to stderr (and optionally a file), leaving
// stdout to the download status lines.
//
// Basic usage:
//
//	if err := logger.Initialize(&cfg.Logging, cfg.Console.Color); err != nil {
//	    return err
//	}
//	log := logger.ForRun(logger.NewRunID())
//	log.WithField("url", u).Debug("fetching")
package logger
