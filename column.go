package tabular

import (
	"fmt"
	"slices"
)

// AddColumn appends a column after the last logical column. The first value
// goes to the header when there is one and the rest to the rows in order;
// missing values are empty, extra values are ignored.
func (t *Table) AddColumn(a Alignment, values ...string) {
	n := t.Cols()
	next := feed(values)
	if t.headers != nil {
		padRow(t.headers, n)
		t.headers.Push(NewCell(next()))
	}
	for i := range t.rows {
		padRow(&t.rows[i], n)
		t.rows[i].Push(NewCell(next()))
	}
	t.aligns[n] = a
	t.invalidate()
}

// InsertColumn places a column before logical column col, shifting the
// constraints and alignments of later columns. Values are assigned as in
// AddColumn. It fails without changing t when col falls inside a spanning
// cell.
func (t *Table) InsertColumn(col int, a Alignment, values ...string) error {
	if col < 0 || col > t.Cols() {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, col, t.Cols())
	}
	for _, r := range t.allRows() {
		if !r.boundary(col) {
			return fmt.Errorf("%w: column %d", ErrSpanConflict, col)
		}
	}

	next := feed(values)
	for _, r := range t.allRows() {
		padRow(r, col)
		idx := len(r.cells)
		if _, i, ok := r.cellAt(col); ok {
			idx = i
		}
		r.cells = slices.Insert(r.cells, idx, NewCell(next()))
	}
	t.constraints = shiftKeys(t.constraints, col, 1)
	t.aligns = shiftKeys(t.aligns, col, 1)
	t.colTruncate = shiftKeys(t.colTruncate, col, 1)
	t.aligns[col] = a
	t.invalidate()
	return nil
}

// RemoveColumn deletes logical column col from the header and every row.
// A spanning cell covering col shrinks by one instead of disappearing.
// It reports whether any cell was affected.
func (t *Table) RemoveColumn(col int) bool {
	if col < 0 {
		return false
	}
	removed := false
	for _, r := range t.allRows() {
		c, i, ok := r.cellAt(col)
		if !ok {
			continue
		}
		removed = true
		if c.Span() > 1 {
			r.cells[i].span = c.Span() - 1
			r.cells[i].memo = lineMemo{}
			continue
		}
		r.Remove(i)
	}
	if !removed {
		return false
	}
	delete(t.constraints, col)
	delete(t.aligns, col)
	delete(t.colTruncate, col)
	t.constraints = shiftKeys(t.constraints, col+1, -1)
	t.aligns = shiftKeys(t.aligns, col+1, -1)
	t.colTruncate = shiftKeys(t.colTruncate, col+1, -1)
	t.invalidate()
	return true
}

// allRows returns pointers to the header, if any, and every data row.
func (t *Table) allRows() []*Row {
	out := make([]*Row, 0, len(t.rows)+1)
	if t.headers != nil {
		out = append(out, t.headers)
	}
	for i := range t.rows {
		out = append(out, &t.rows[i])
	}
	return out
}

// padRow appends empty cells until r covers n logical columns.
func padRow(r *Row, n int) {
	for w := r.Width(); w < n; w++ {
		r.Push(NewCell(""))
	}
}

// feed returns successive values, then empty strings.
func feed(values []string) func() string {
	i := 0
	return func() string {
		if i >= len(values) {
			return ""
		}
		v := values[i]
		i++
		return v
	}
}

// shiftKeys moves every entry with key >= from by delta.
func shiftKeys[V any](m map[int]V, from, delta int) map[int]V {
	out := make(map[int]V, len(m))
	for k, v := range m {
		if k >= from {
			k += delta
		}
		out[k] = v
	}
	return out
}
