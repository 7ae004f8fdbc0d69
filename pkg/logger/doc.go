// Package logger provides a thin factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger writing either JSON (the default) or text to the
// configured output. Options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//
// ParseFormat and ParseLevel convert configuration strings into the values
// those options expect.
//
// Helper constructors such as Param, Checker, Rule and Error live in attr.go
// and keep attribute naming consistent across the module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("kwcheck")),
//	)
//	log.Debug("parameters rejected", logger.Param("email"), logger.Error(err))
//
// # Error Handling
//
// Error, Errors and Param produce attributes only when given a meaningful
// value, so callers do not need a nil check:
//
//	log.Info("validated", logger.Error(err))
package logger
