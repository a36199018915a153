// Package main provides the entry point for the swatch CLI.
//
// swatch fetches one web page and lists the hexadecimal color codes
// (#RRGGBB) that appear most often in its source.
//
// Usage:
//
//	swatch [url]
//	swatch --json https://example.com
//
// See --help for all available options.
package main

// main is the entry point for swatch.
func main() {
	Execute()
}
