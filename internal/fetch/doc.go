// Package fetch retrieves the target web page.
//
// A Fetcher performs exactly one HTTP GET per call, with no retries. It sends
// a browser-like User-Agent plus any configured extra headers, follows
// redirects, and treats any final status outside 2xx as an error. The body
// is read up to a size limit and decoded as UTF-8 lossily: invalid byte
// sequences are dropped instead of failing the fetch. The Content-Type
// of the response is recorded but never used to reject it.
//
// Connections are direct unless a SOCKS5 proxy address is configured, in
// which case every connection is dialed through golang.org/x/net/proxy.
//
// # Usage
//
//	client, err := fetch.NewHTTPClient(30*time.Second, "")
//	f := fetch.NewFetcher(client, fetch.WithUserAgent(ua))
//	page, err := f.Fetch(ctx, "https://example.com/")
package fetch
