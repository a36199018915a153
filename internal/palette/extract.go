package palette

import "regexp"

// hexColorRegex matches '#' followed by exactly six hex digits.
// The match is fixed length, so "#1234567" yields "#123456" and leaves the
// trailing digit unmatched.
var hexColorRegex = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// Extract returns every non-overlapping color match in text, left to right,
// duplicates included. It returns an empty, non-nil slice when nothing
// matches.
func Extract(text string) []string {
	matches := hexColorRegex.FindAllString(text, -1)
	if matches == nil {
		return make([]string, 0)
	}
	return matches
}
