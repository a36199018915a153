package palette

import (
	"sort"

	"github.com/nao1215/swatch/internal/model"
)

// Table is a frequency table of color strings.
// Entries are kept in order of first appearance, which is what the ranking
// falls back to when counts are equal.
type Table struct {
	// order holds distinct colors in order of first appearance.
	order []string

	// counts maps a color to its number of occurrences.
	counts map[string]int

	// total is the number of matches tallied.
	total int
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		order:  make([]string, 0),
		counts: make(map[string]int),
	}
}

// Tally builds a Table from a match sequence in one pass.
func Tally(matches []string) *Table {
	t := NewTable()
	for _, m := range matches {
		t.Add(m)
	}
	return t
}

// Add records one occurrence of color.
func (t *Table) Add(color string) {
	if _, ok := t.counts[color]; !ok {
		t.order = append(t.order, color)
	}
	t.counts[color]++
	t.total++
}

// Total returns the number of matches tallied. It always equals the sum of
// all counts.
func (t *Table) Total() int {
	return t.total
}

// Distinct returns the number of distinct colors.
func (t *Table) Distinct() int {
	return len(t.order)
}

// MostCommon returns up to n entries ordered by descending count.
// Equal counts keep their first-appearance order.
// If n is zero or negative, all entries are returned; the command line
// rejects such values, so only callers that want the full table pass them.
func (t *Table) MostCommon(n int) []model.ColorCount {
	ranked := make([]model.ColorCount, 0, len(t.order))
	for _, color := range t.order {
		ranked = append(ranked, model.ColorCount{Color: color, Count: t.counts[color]})
	}

	// SliceStable keeps first-appearance order among ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
