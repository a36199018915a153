package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so that callers can use
// errors.Is() while users still get a readable message.
var (
	// ErrNoTarget is returned when the target URL is empty.
	ErrNoTarget = errors.New("no target specified: provide a URL argument or set url in the config file")

	// ErrInvalidURL is returned when the target URL cannot be parsed or is not http(s).
	ErrInvalidURL = errors.New("invalid target URL: must be an absolute http or https URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidTopN is returned when the number of colors to report is not positive.
	ErrInvalidTopN = errors.New("invalid top: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to use the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrEmptyUserAgent is returned when the User-Agent has been set to an empty string.
	ErrEmptyUserAgent = errors.New("invalid user agent: must not be empty")
)
