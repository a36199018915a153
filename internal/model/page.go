package model

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Page represents the fetched web page.
// It holds the raw response bytes next to the lossily decoded text so that
// the report can describe the response without re-reading it.
type Page struct {
	// URL is the URL that was requested.
	URL string `json:"url"`

	// FinalURL is the URL after redirects were followed.
	FinalURL string `json:"final_url,omitempty"`

	// StatusCode is the HTTP status code of the final response.
	StatusCode int `json:"status_code"`

	// ContentType is the Content-Type header of the response.
	// Any content type is accepted; the body is always treated as text.
	ContentType string `json:"content_type,omitempty"`

	// Headers contains all HTTP response headers.
	Headers map[string][]string `json:"-"`

	// Raw contains the raw response body bytes.
	Raw []byte `json:"-"`

	// Text is the body decoded as UTF-8. Invalid byte sequences have been
	// dropped.
	Text string `json:"-"`

	// Size is the number of raw body bytes read.
	Size int `json:"size"`

	// Hash is the hex encoded SHA3-256 digest of Raw.
	Hash string `json:"hash,omitempty"`
}

// ComputeHash sets Size and Hash from Raw.
// An empty body leaves Hash empty.
func (p *Page) ComputeHash() {
	p.Size = len(p.Raw)
	if len(p.Raw) == 0 {
		p.Hash = ""
		return
	}
	sum := sha3.Sum256(p.Raw)
	p.Hash = hex.EncodeToString(sum[:])
}

// GetHeader returns the first value of the named response header.
// The lookup is case-sensitive on the canonical header name.
func (p *Page) GetHeader(name string) string {
	if p.Headers == nil {
		return ""
	}
	values := p.Headers[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
