// Package logging provides structured logging for the Awair monitor.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the pipeline.
//
// # Features
//
//   - JSON output for production (machine-parsable)
//   - Text output for development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via config.LoggingConfig (AWAIR_LOG_LEVEL,
// AWAIR_LOG_FORMAT). Output goes to stderr by default so the process's
// diagnostic channel is separate from stdout.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("publishing air data", "points", 5)
//	logger.Error("fetch failed", "error", err)
//
// # Security
//
// Never log the API key or the InfluxDB password.
package logging
