package model

import "fmt"

// ColorCount is one entry of the frequency table: a color code exactly as it
// appeared in the page and the number of times it appeared.
type ColorCount struct {
	// Color is the matched text, e.g. "#AABBCC". Case is preserved.
	Color string `json:"color"`

	// Count is the number of occurrences. Always at least 1.
	Count int `json:"count"`
}

// String formats the entry the way the text report prints it.
func (c ColorCount) String() string {
	return fmt.Sprintf("%s: %d", c.Color, c.Count)
}
