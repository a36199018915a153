package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/swatch/internal/config"
)

// newTestFetcher creates a Fetcher with a direct client.
func newTestFetcher(t *testing.T, opts ...Option) *Fetcher {
	t.Helper()

	client, err := NewHTTPClient(5*time.Second, "")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return NewFetcher(client, opts...)
}

// TestFetcherFetch tests a successful page fetch.
func TestFetcherFetch(t *testing.T) {
	t.Parallel()

	t.Run("returns decoded body and response metadata", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<body style="color:#AABBCC">hi</body>`))
		}))
		defer srv.Close()

		page, err := newTestFetcher(t).Fetch(t.Context(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if page.Text != `<body style="color:#AABBCC">hi</body>` {
			t.Errorf("unexpected text %q", page.Text)
		}
		if page.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", page.StatusCode)
		}
		if page.ContentType != "text/html; charset=utf-8" {
			t.Errorf("unexpected content type %q", page.ContentType)
		}
		if page.Size != len(page.Raw) || page.Size == 0 {
			t.Errorf("unexpected size %d for %d raw bytes", page.Size, len(page.Raw))
		}
		if page.Hash == "" {
			t.Error("expected hash to be computed")
		}
		if page.URL != srv.URL {
			t.Errorf("expected URL %q, got %q", srv.URL, page.URL)
		}
	})

	t.Run("sends the default browser user agent", func(t *testing.T) {
		t.Parallel()

		gotUA := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotUA <- r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		if _, err := newTestFetcher(t).Fetch(t.Context(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ua := <-gotUA; ua != config.DefaultUserAgent {
			t.Errorf("expected default user agent, got %q", ua)
		}
	})

	t.Run("sends extra headers without replacing the user agent", func(t *testing.T) {
		t.Parallel()

		gotHeaders := make(chan http.Header, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotHeaders <- r.Header.Clone()
		}))
		defer srv.Close()

		f := newTestFetcher(t,
			WithUserAgent("custom-agent/1.0"),
			WithHeaders(map[string]string{
				"Accept-Language": "en-US",
				"User-Agent":      "should-not-win",
			}),
		)
		if _, err := f.Fetch(t.Context(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		h := <-gotHeaders
		if h.Get("User-Agent") != "custom-agent/1.0" {
			t.Errorf("expected custom user agent, got %q", h.Get("User-Agent"))
		}
		if h.Get("Accept-Language") != "en-US" {
			t.Errorf("expected Accept-Language header, got %q", h.Get("Accept-Language"))
		}
	})

	t.Run("invalid UTF-8 is dropped, not an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte{'#', 'A', 'A', 'B', 'B', 'C', 'C', 0xff, 0xfe, ' ', '#', '1', '2', '3', 0xff, '4', '5', '6'})
		}))
		defer srv.Close()

		page, err := newTestFetcher(t).Fetch(t.Context(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(page.Text, "#AABBCC") || !strings.Contains(page.Text, "#123456") {
			t.Errorf("expected colors to survive decoding, got %q", page.Text)
		}
		if page.Text != "#AABBCC #123456" {
			t.Errorf("expected invalid bytes to be dropped, got %q", page.Text)
		}
		if page.Size != 18 {
			t.Errorf("expected raw size 18, got %d", page.Size)
		}
	})

	t.Run("any content type is accepted", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte("#000000"))
		}))
		defer srv.Close()

		page, err := newTestFetcher(t).Fetch(t.Context(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Text != "#000000" {
			t.Errorf("unexpected text %q", page.Text)
		}
	})

	t.Run("body is truncated at max body size", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(bytes.Repeat([]byte("a"), 1000))
		}))
		defer srv.Close()

		page, err := newTestFetcher(t, WithMaxBodySize(100)).Fetch(t.Context(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Size != 100 {
			t.Errorf("expected 100 bytes, got %d", page.Size)
		}
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("#FFFFFF"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		page, err := newTestFetcher(t).Fetch(t.Context(), srv.URL+"/old")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.FinalURL != srv.URL+"/new" {
			t.Errorf("expected final URL %q, got %q", srv.URL+"/new", page.FinalURL)
		}
		if page.Text != "#FFFFFF" {
			t.Errorf("unexpected text %q", page.Text)
		}
	})
}

// TestFetcherFetchErrors tests the failure conditions.
func TestFetcherFetchErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx status returns StatusError", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("#AABBCC"))
		}))
		defer srv.Close()

		_, err := newTestFetcher(t).Fetch(t.Context(), srv.URL)
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		if statusErr.StatusCode != http.StatusForbidden {
			t.Errorf("expected 403, got %d", statusErr.StatusCode)
		}
		if err.Error() != "HTTP Error 403: Forbidden" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("non-standard status keeps the server reason", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(599)
		}))
		defer srv.Close()

		_, err := newTestFetcher(t).Fetch(t.Context(), srv.URL)
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		// net/http writes "599 status code 599" for codes it has no text for.
		if err.Error() != "HTTP Error 599: status code 599" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("unreachable host returns error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		unreachable := srv.URL
		srv.Close()

		if _, err := newTestFetcher(t).Fetch(t.Context(), unreachable); err == nil {
			t.Error("expected error for unreachable host")
		}
	})

	t.Run("timeout returns error", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		client, err := NewHTTPClient(50*time.Millisecond, "")
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := NewFetcher(client).Fetch(t.Context(), srv.URL); err == nil {
			t.Error("expected timeout error")
		}
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := newTestFetcher(t).Fetch(ctx, srv.URL)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("nil client returns ErrNilClient", func(t *testing.T) {
		t.Parallel()

		_, err := NewFetcher(nil).Fetch(t.Context(), "http://example.com")
		if !errors.Is(err, ErrNilClient) {
			t.Errorf("expected ErrNilClient, got %v", err)
		}
	})

	t.Run("malformed URL returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := newTestFetcher(t).Fetch(t.Context(), "http://[::1"); err == nil {
			t.Error("expected error for malformed URL")
		}
	})
}
