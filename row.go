package tabular

import (
	"fmt"
	"slices"
	"strings"
)

// Row is an ordered sequence of cells. Cells without an explicit alignment
// use the row's default alignment.
type Row struct {
	cells []Cell
	align Alignment
}

// NewRow returns a row with one single-column cell per value.
func NewRow(values ...string) Row {
	return NewRowAligned(AlignLeft, values...)
}

// NewRowAligned returns a row whose default alignment is a.
func NewRowAligned(a Alignment, values ...string) Row {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(v)
	}
	return Row{cells: cells, align: a}
}

// RowOf returns a row built from prepared cells.
func RowOf(cells ...Cell) Row {
	return Row{cells: slices.Clone(cells)}
}

// Push appends a cell.
func (r *Row) Push(c Cell) {
	r.cells = append(r.cells, c)
}

// Insert places c before the cell at index i. i may equal Len.
func (r *Row) Insert(i int, c Cell) error {
	if i < 0 || i > len(r.cells) {
		return fmt.Errorf("%w: cell %d of %d", ErrIndexOutOfRange, i, len(r.cells))
	}
	r.cells = slices.Insert(r.cells, i, c)
	return nil
}

// Remove deletes and returns the cell at index i.
func (r *Row) Remove(i int) (Cell, bool) {
	if i < 0 || i >= len(r.cells) {
		return Cell{}, false
	}
	c := r.cells[i]
	r.cells = slices.Delete(r.cells, i, i+1)
	return c, true
}

// Cells returns a copy of the row's cells.
func (r Row) Cells() []Cell { return slices.Clone(r.cells) }

// Cell returns the cell at index i.
func (r Row) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(r.cells) {
		return Cell{}, false
	}
	return r.cells[i], true
}

// Len returns the number of cells.
func (r Row) Len() int { return len(r.cells) }

// Width returns the number of logical columns, the sum of all spans.
func (r Row) Width() int {
	n := 0
	for _, c := range r.cells {
		n += c.Span()
	}
	return n
}

// Alignment returns the default alignment for cells of this row.
func (r Row) Alignment() Alignment { return r.align }

// SetAlignment sets the default alignment for cells of this row.
func (r *Row) SetAlignment(a Alignment) { r.align = a }

// Values returns the content of every cell.
func (r Row) Values() []string {
	out := make([]string, len(r.cells))
	for i, c := range r.cells {
		out[i] = c.content
	}
	return out
}

// String joins the cell contents with " | ".
func (r Row) String() string {
	return strings.Join(r.Values(), " | ")
}

// clone returns a deep copy that shares nothing with r.
func (r Row) clone() Row {
	return Row{cells: slices.Clone(r.cells), align: r.align}
}

// cellAt returns the cell covering logical column col and the cell's index.
func (r Row) cellAt(col int) (Cell, int, bool) {
	start := 0
	for i, c := range r.cells {
		if col >= start && col < start+c.Span() {
			return c, i, true
		}
		start += c.Span()
	}
	return Cell{}, -1, false
}

// boundary reports whether a cell starts exactly at logical column col.
// Columns at or past the row's width count as boundaries.
func (r Row) boundary(col int) bool {
	start := 0
	for _, c := range r.cells {
		if start == col {
			return true
		}
		if start > col {
			return false
		}
		start += c.Span()
	}
	return col >= start
}
