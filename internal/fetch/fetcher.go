package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/nao1215/swatch/internal/config"
	"github.com/nao1215/swatch/internal/model"
)

// Fetcher downloads a single page.
type Fetcher struct {
	// client performs the request. It may route through a SOCKS5 proxy.
	client *http.Client

	// userAgent is sent as the User-Agent header.
	userAgent string

	// headers are sent with the request. They never replace userAgent.
	headers map[string]string

	// maxBodySize limits how many body bytes are read.
	maxBodySize int64

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHeaders sets extra request headers.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// WithMaxBodySize sets the maximum response body size.
// Non-positive values keep the default.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher that uses client for the request.
func NewFetcher(client *http.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      client,
		userAgent:   config.DefaultUserAgent,
		headers:     make(map[string]string),
		maxBodySize: config.DefaultMaxBodySize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs one GET request to pageURL and returns the page.
// Any transport failure or a non-2xx final status is returned as an error;
// the latter as *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*model.Page, error) {
	if f.client == nil {
		return nil, ErrNilClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	for key, value := range f.headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("User-Agent", f.userAgent)

	f.logger.Debug("sending request",
		"url", pageURL,
		"userAgent", f.userAgent,
		slog.Group("headers", headerAttrs(f.headers)...),
	)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			URL:        finalURL,
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	page := &model.Page{
		URL:         pageURL,
		FinalURL:    finalURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Headers:     resp.Header,
		Raw:         raw,
		Text:        DecodeText(raw),
	}
	page.ComputeHash()

	f.logger.Debug("response received",
		"url", finalURL,
		"status", resp.StatusCode,
		"contentType", page.ContentType,
		"bytes", page.Size,
	)

	return page, nil
}

// headerAttrs converts headers to log attributes. The secure log handler
// masks the values of credential headers.
func headerAttrs(headers map[string]string) []any {
	attrs := make([]any, 0, len(headers))
	for key, value := range headers {
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
