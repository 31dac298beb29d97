// Package logging provides structured logging for the ConnectLife CLI.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the client. Logging is silent by default so normal CLI
// output stays clean; set CONNECTLIFE_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: request/response traces, token lifecycle events
//   - Info: normal operations (login completed, device list fetched)
//   - Warn: non-fatal issues (callback listener fallback, retries)
//   - Error: fatal issues (token refresh failure, API errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Device control sent",
//	    zap.String("puid", device.PUID),
//	    zap.Int("properties", len(props)),
//	)
//
// Log output goes to stderr in console format so it never interleaves with
// the command's stdout (tables, JSON).
//
// # Secrets
//
// Access and refresh tokens, client secrets, and passwords are never logged.
// The LogHTTPRequest/LogHTTPResponse/LogTokenEvent helpers only accept
// non-sensitive parameters.
//
// # Configuration
//
// Initialize logging at command startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
