package tabular

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Sorting and filtering act on data rows only; the header stays in place.
// Columns are logical: a spanning cell answers for every column it covers.
// All sorts are stable.

// Sort orders rows by the text of column col, ascending.
func (t *Table) Sort(col int) {
	t.SortBy(func(a, b Row) int { return strings.Compare(textAt(a, col), textAt(b, col)) })
}

// SortDesc orders rows by the text of column col, descending.
func (t *Table) SortDesc(col int) {
	t.SortBy(func(a, b Row) int { return strings.Compare(textAt(b, col), textAt(a, col)) })
}

// SortNum orders rows by column col read as numbers, ascending. Cells
// that are not numbers sort before every number.
func (t *Table) SortNum(col int) {
	t.SortBy(func(a, b Row) int { return cmp.Compare(numAt(a, col), numAt(b, col)) })
}

// SortNumDesc orders rows by column col read as numbers, descending.
func (t *Table) SortNumDesc(col int) {
	t.SortBy(func(a, b Row) int { return cmp.Compare(numAt(b, col), numAt(a, col)) })
}

// SortBy orders rows with a comparator returning a negative number when a
// sorts before b, a positive number when after, and zero when equal.
func (t *Table) SortBy(compare func(a, b Row) int) {
	slices.SortStableFunc(t.rows, compare)
	t.invalidate()
}

// Filter keeps only the rows for which keep returns true.
func (t *Table) Filter(keep func(Row) bool) {
	t.rows = slices.DeleteFunc(t.rows, func(r Row) bool { return !keep(r) })
	t.invalidate()
}

// FilterEq keeps rows whose column col equals value.
func (t *Table) FilterEq(col int, value string) {
	t.FilterCol(col, func(s string) bool { return s == value })
}

// FilterHas keeps rows whose column col contains substr.
func (t *Table) FilterHas(col int, substr string) {
	t.FilterCol(col, func(s string) bool { return strings.Contains(s, substr) })
}

// FilterCol keeps rows whose column col satisfies keep. Rows too short to
// have the column are dropped.
func (t *Table) FilterCol(col int, keep func(string) bool) {
	t.Filter(func(r Row) bool {
		c, _, ok := r.cellAt(col)
		return ok && keep(c.content)
	})
}

// Filtered returns a copy of t holding only the rows for which keep returns
// true. t is not modified.
func (t *Table) Filtered(keep func(Row) bool) *Table {
	c := t.Clone()
	c.Filter(keep)
	return c
}

func textAt(r Row, col int) string {
	c, _, _ := r.cellAt(col)
	return c.content
}

// numAt parses column col as a float. Anything else, NaN included, is
// negative infinity.
func numAt(r Row, col int) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(textAt(r, col)), 64)
	if err != nil || math.IsNaN(f) {
		return math.Inf(-1)
	}
	return f
}
