// Package logger builds configured log/slog loggers.
//
// It provides a small factory with JSON and text handlers, env-driven
// configuration, and attribute helpers for the values this codebase logs
// most (errors, role names, content identifiers).
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.NewFromConfig(cfg, logger.WithAttr(slog.String("version", version)))
//	logger.SetAsDefault(log)
//
// Loggers are passed into components explicitly; nothing in this module reads
// the slog default, so tests can substitute a discard or capturing logger.
package logger
