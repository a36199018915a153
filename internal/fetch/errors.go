package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrInvalidProxyAddress is returned when the proxy address format is invalid.
	// Expected format is "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrNilClient is returned when a Fetcher is used without an HTTP client.
	ErrNilClient = errors.New("fetch: nil http client")
)

// StatusError is returned when the final response status is not 2xx.
type StatusError struct {
	// URL is the URL that produced the response.
	URL string

	// StatusCode is the HTTP status code received.
	StatusCode int

	// Reason is the reason phrase sent by the server, if any.
	Reason string
}

// Error implements the error interface.
// The message has the form "HTTP Error 404: Not Found". The server's reason
// phrase is used when present, then the standard text for the code.
func (e *StatusError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	if reason == "" {
		return fmt.Sprintf("HTTP Error %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, reason)
}

// reasonPhrase extracts the reason phrase from a response status line
// such as "404 Not Found".
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
