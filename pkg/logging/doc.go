// Package logging provides structured logging utilities for shampug components.
//
// # Overview
//
// This package wraps the standard library slog package with shampug defaults
// so the CLI and the fixture server log the same way. It supports
// environment-based log level configuration, module/version context injection,
// and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Potentially problematic situations
//   - ERROR: Failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("shampug", version)
//	    slog.Info("fixtures loaded", "categories", 3)
//	}
//
// Explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("shampug", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug shampug serve
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "shampug",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
