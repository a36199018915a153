package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// With no config file and no flags a run is one request to DefaultURL,
// top 20 colors, plain text output.
const (
	// DefaultURL is the page fetched when no URL is given.
	DefaultURL = "https://www.behance.net/gallery/243595025/Brand-Identity"

	// DefaultUserAgent is a desktop Chrome identity.
	// Some sites refuse requests without a browser-like User-Agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultTimeout bounds the whole request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultTopN is the number of colors printed.
	DefaultTopN = 20

	// DefaultMaxBodySize limits the response body size to read.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// AppName is the application name used for XDG directory paths.
	AppName = "swatch"
)

// Config holds all configuration options for swatch.
// It is populated from defaults, then the config file, then CLI flags,
// and passed down explicitly rather than kept in global state.
type Config struct {
	// URL is the page to fetch.
	URL string

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string

	// Headers are extra request headers. They never override UserAgent.
	Headers map[string]string

	// Timeout is the overall request timeout.
	Timeout time.Duration

	// TopN is the maximum number of colors in the report.
	TopN int

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// Empty means a direct connection.
	ProxyAddress string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Longer bodies are truncated. 0 means DefaultMaxBodySize.
	MaxBodySize int64

	// Verbose enables debug logging on stderr.
	Verbose bool

	// ConfigFilePath is the config file given with --config.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty the report goes to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		URL:         DefaultURL,
		UserAgent:   DefaultUserAgent,
		Headers:     make(map[string]string),
		Timeout:     DefaultTimeout,
		TopN:        DefaultTopN,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// ApplyFile overrides config values with the non-zero values of a config file.
// Headers are merged; file headers replace defaults with the same name.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.URL != "" {
		c.URL = f.URL
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Timeout > 0 {
		c.Timeout = f.Timeout
	}
	if f.Top > 0 {
		c.TopN = f.Top
	}
	if f.Proxy != "" {
		c.ProxyAddress = f.Proxy
	}
	if f.MaxBodySize > 0 {
		c.MaxBodySize = f.MaxBodySize
	}
	if len(f.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		for k, v := range f.Headers {
			c.Headers[k] = v
		}
	}
}

// XDGConfigDir returns the XDG config directory for swatch.
// On Linux: ~/.config/swatch
// On macOS: ~/Library/Application Support/swatch
// On Windows: %APPDATA%\swatch
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrNoTarget
	}

	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	if c.UserAgent == "" {
		return ErrEmptyUserAgent
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.TopN <= 0 {
		return ErrInvalidTopN
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}
