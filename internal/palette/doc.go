// Package palette finds hexadecimal color codes in page text and ranks them
// by frequency.
//
// Extraction is a plain regular expression scan over the text. There is no
// HTML or CSS awareness: a color in a style attribute, a stylesheet, an SVG
// or a JavaScript string counts the same. Only the six digit "#RRGGBB" form
// is recognized. Three digit shorthand and rgb()/rgba() notation are not,
// and matches keep the case they had in the page, so "#AABBCC" and
// "#aabbcc" are different colors.
//
// # Usage
//
//	matches := palette.Extract(text)
//	table := palette.Tally(matches)
//	for _, c := range table.MostCommon(20) {
//	    fmt.Println(c)
//	}
package palette
