// Package log provides the swatch logger: a log/slog text or JSON handler
// wrapped so that request secrets never reach the log output.
//
// Swatch sends user-configured request headers, which may carry cookies or
// bearer tokens, and the target URL may embed credentials. The
// SecureHandler masks:
//   - attributes whose key names a credential header (Cookie, Authorization, ...)
//   - string values that look like bearer/basic credentials or JWTs
//   - the password part of any URL-valued string attribute
//
// Logs are written to stderr only. Stdout is reserved for the report.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	logger.Debug("sending request", "url", target, "cookie", cookie) // cookie=***REDACTED***
package log
