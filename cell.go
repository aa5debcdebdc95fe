package tabular

import "fmt"

// Cell is the smallest renderable unit of a table.
//
// The zero value is an empty, left-inheriting cell spanning one column.
type Cell struct {
	content  string
	align    Alignment
	hasAlign bool // true if explicitly set (vs inherited from the row)
	span     int

	memo lineMemo
}

// lineMemo caches the last fitted lines of a cell. It is keyed on every
// input that changes the result so a stale entry is never returned.
type lineMemo struct {
	ok    bool
	width int
	limit int
	lines []string
}

// NewCell returns a cell holding content.
func NewCell(content string) Cell {
	return Cell{content: content, span: 1}
}

// Content returns the raw cell text.
func (c Cell) Content() string { return c.content }

// Alignment returns the explicit alignment of the cell, if any.
func (c Cell) Alignment() (Alignment, bool) { return c.align, c.hasAlign }

// WithAlignment returns a copy of c with an explicit alignment.
func (c Cell) WithAlignment(a Alignment) Cell {
	c.align = a
	c.hasAlign = true
	c.memo = lineMemo{}
	return c
}

// WithSpan returns a copy of c spanning n logical columns.
func (c Cell) WithSpan(n int) (Cell, error) {
	if n < 1 {
		return c, fmt.Errorf("%w: %d", ErrInvalidSpan, n)
	}
	c.span = n
	c.memo = lineMemo{}
	return c, nil
}

// Span returns the number of logical columns the cell occupies.
func (c Cell) Span() int {
	if c.span < 1 {
		return 1
	}
	return c.span
}

// String returns the cell content.
func (c Cell) String() string { return c.content }

// fitted returns the display lines of the cell for a cell width. A positive
// limit selects truncation mode. Results are memoized on the cell.
func (c *Cell) fitted(width, limit int) []string {
	if c.memo.ok && c.memo.width == width && c.memo.limit == limit {
		return c.memo.lines
	}
	var lines []string
	if limit > 0 {
		lines = []string{fitLine(TruncateText(c.content, limit), width)}
	} else {
		lines = WrapText(c.content, width)
	}
	c.memo = lineMemo{ok: true, width: width, limit: limit, lines: lines}
	return lines
}
