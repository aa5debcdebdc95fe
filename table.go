package tabular

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Table owns a header, rows and rendering configuration, plus the layout
// computed from them. Every mutation marks the layout dirty; the next
// render recomputes it.
//
// A Table is not safe for concurrent use.
type Table struct {
	headers      *Row
	rows         []Row
	style        Style
	constraints  map[int]Constraint
	aligns       map[int]Alignment
	padding      Padding
	spacing      int
	valign       VAlign
	truncate     int
	colTruncate  map[int]int
	available    int
	rowSeparator bool

	dirty bool
	cache *layout
}

// New returns an empty Classic table with default padding.
func New() *Table {
	return &Table{
		style:       Classic,
		constraints: map[int]Constraint{},
		aligns:      map[int]Alignment{},
		colTruncate: map[int]int{},
		padding:     DefaultPadding,
		dirty:       true,
	}
}

func (t *Table) invalidate() {
	t.dirty = true
	t.cache = nil
}

// layout returns the memoized layout, recomputing it if a mutation
// happened since the last render.
func (t *Table) layout() *layout {
	if t.dirty || t.cache == nil {
		t.cache = t.buildLayout()
		t.dirty = false
	}
	return t.cache
}

// --- Content ---

// SetHeaders sets the header row.
func (t *Table) SetHeaders(r Row) error {
	if err := checkSpans(r, t.bodyCols()); err != nil {
		return err
	}
	h := r.clone()
	t.headers = &h
	t.invalidate()
	return nil
}

// Header sets a header of plain cells and returns t.
func (t *Table) Header(values ...string) *Table {
	h := NewRow(values...)
	t.headers = &h
	t.invalidate()
	return t
}

// ClearHeaders removes the header row.
func (t *Table) ClearHeaders() {
	t.headers = nil
	t.invalidate()
}

// Headers returns a copy of the header row.
func (t *Table) Headers() (Row, bool) {
	if t.headers == nil {
		return Row{}, false
	}
	return t.headers.clone(), true
}

// AddRow appends a copy of r.
func (t *Table) AddRow(r Row) error {
	if err := checkSpans(r, t.Cols()); err != nil {
		return err
	}
	t.rows = append(t.rows, r.clone())
	t.invalidate()
	return nil
}

// Row appends a row of plain cells and returns t.
func (t *Table) Row(values ...string) *Table {
	t.rows = append(t.rows, NewRow(values...))
	t.invalidate()
	return t
}

// InsertRow places a copy of r before row i. i may equal Len.
func (t *Table) InsertRow(i int, r Row) error {
	if i < 0 || i > len(t.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, len(t.rows))
	}
	if err := checkSpans(r, t.Cols()); err != nil {
		return err
	}
	t.rows = slices.Insert(t.rows, i, r.clone())
	t.invalidate()
	return nil
}

// RemoveRow deletes and returns row i.
func (t *Table) RemoveRow(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	r := t.rows[i]
	t.rows = slices.Delete(t.rows, i, i+1)
	t.invalidate()
	return r, true
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.clone()
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// IsEmpty reports whether the table has neither header nor rows.
func (t *Table) IsEmpty() bool { return t.headers == nil && len(t.rows) == 0 }

// Cols returns the number of logical columns: the widest of the header and
// all rows.
func (t *Table) Cols() int {
	n := t.bodyCols()
	if t.headers != nil {
		n = max(n, t.headers.Width())
	}
	return n
}

func (t *Table) bodyCols() int {
	n := 0
	for _, r := range t.rows {
		n = max(n, r.Width())
	}
	return n
}

// checkSpans rejects a row whose spanning cells run past cols. A cols of
// zero means there is nothing to measure against yet.
func checkSpans(r Row, cols int) error {
	if cols == 0 {
		return nil
	}
	start := 0
	for i, c := range r.cells {
		if c.Span() > 1 && start+c.Span() > cols {
			return fmt.Errorf("%w: cell %d spans columns %d-%d of %d", ErrSpanOverflow, i, start, start+c.Span()-1, cols)
		}
		start += c.Span()
	}
	return nil
}

// --- Configuration ---

// SetStyle selects the rendering style.
func (t *Table) SetStyle(s Style) *Table {
	t.style = s
	t.invalidate()
	return t
}

// Style returns the rendering style.
func (t *Table) Style() Style { return t.style }

// SetPadding sets cell padding. Negative values are rejected.
func (t *Table) SetPadding(p Padding) error {
	if err := p.validate(); err != nil {
		return err
	}
	t.padding = p
	t.invalidate()
	return nil
}

// Padding returns the cell padding.
func (t *Table) Padding() Padding { return t.padding }

// SetSpacing sets the number of blank columns between logical columns.
func (t *Table) SetSpacing(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: spacing %d", ErrNegativeValue, n)
	}
	t.spacing = n
	t.invalidate()
	return nil
}

// Spacing returns the blank columns between logical columns.
func (t *Table) Spacing() int { return t.spacing }

// SetConstraint declares the width constraint of column col, replacing any
// earlier one. The zero Constraint removes it.
func (t *Table) SetConstraint(col int, c Constraint) error {
	if col < 0 {
		return fmt.Errorf("%w: column %d", ErrIndexOutOfRange, col)
	}
	if err := c.validate(); err != nil {
		return err
	}
	if c.Kind == ConstraintProportional {
		sum := c.Value
		for i, other := range t.constraints {
			if i != col && other.Kind == ConstraintProportional {
				sum += other.Value
			}
		}
		if sum > 100 {
			return fmt.Errorf("%w: proportions sum to %d%%", ErrInvalidProportion, sum)
		}
	}
	if c.Kind == ConstraintNone {
		delete(t.constraints, col)
	} else {
		t.constraints[col] = c
	}
	t.invalidate()
	return nil
}

// Constraint returns the width constraint of column col.
func (t *Table) Constraint(col int) (Constraint, bool) {
	c, ok := t.constraints[col]
	return c, ok
}

// Constraints returns a copy of all declared constraints by column.
func (t *Table) Constraints() map[int]Constraint { return maps.Clone(t.constraints) }

// Align sets the alignment of column col. It applies to cells without an
// explicit alignment and to the Markdown separator markers.
func (t *Table) Align(col int, a Alignment) error {
	if col < 0 {
		return fmt.Errorf("%w: column %d", ErrIndexOutOfRange, col)
	}
	t.aligns[col] = a
	t.invalidate()
	return nil
}

// ColumnAlignment returns the alignment declared for column col.
func (t *Table) ColumnAlignment(col int) (Alignment, bool) {
	a, ok := t.aligns[col]
	return a, ok
}

// SetVAlign sets the vertical alignment of cells shorter than their row.
func (t *Table) SetVAlign(v VAlign) *Table {
	t.valign = v
	t.invalidate()
	return t
}

// VAlign returns the vertical alignment.
func (t *Table) VAlign() VAlign { return t.valign }

// SetTruncate enables truncation: cell content is cut to limit display
// columns and suffixed with "..." instead of wrapping. Columns with a Wrap
// constraint keep wrapping. Zero disables truncation.
func (t *Table) SetTruncate(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: truncate limit %d", ErrNegativeValue, limit)
	}
	t.truncate = limit
	t.invalidate()
	return nil
}

// Truncate returns the truncation limit, 0 when disabled.
func (t *Table) Truncate() int { return t.truncate }

// SetColumnTruncate sets the truncation limit of column col, overriding the
// table limit for that column. Zero removes the override.
func (t *Table) SetColumnTruncate(col, limit int) error {
	if col < 0 {
		return fmt.Errorf("%w: column %d", ErrIndexOutOfRange, col)
	}
	if limit < 0 {
		return fmt.Errorf("%w: truncate limit %d", ErrNegativeValue, limit)
	}
	if limit == 0 {
		delete(t.colTruncate, col)
	} else {
		t.colTruncate[col] = limit
	}
	t.invalidate()
	return nil
}

// ColumnTruncate returns the truncation limit set for column col.
func (t *Table) ColumnTruncate(col int) (int, bool) {
	limit, ok := t.colTruncate[col]
	return limit, ok
}

// SetAvailableWidth sets the total width Proportional columns divide. Zero
// selects DefaultAvailableWidth.
func (t *Table) SetAvailableWidth(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: available width %d", ErrNegativeValue, n)
	}
	t.available = n
	t.invalidate()
	return nil
}

// AvailableWidth returns the width set with SetAvailableWidth.
func (t *Table) AvailableWidth() int { return t.available }

// SetRowSeparator draws a rule between data rows in Classic and Modern.
func (t *Table) SetRowSeparator(on bool) *Table {
	t.rowSeparator = on
	t.invalidate()
	return t
}

// Clone returns a deep copy of t with the same configuration.
func (t *Table) Clone() *Table {
	c := *t
	if t.headers != nil {
		h := t.headers.clone()
		c.headers = &h
	}
	c.rows = t.Rows()
	c.constraints = maps.Clone(t.constraints)
	c.aligns = maps.Clone(t.aligns)
	c.colTruncate = maps.Clone(t.colTruncate)
	c.invalidate()
	return &c
}

// --- Rendering ---

// Widths returns the resolved width of every logical column.
func (t *Table) Widths() []int {
	return slices.Clone(t.layout().widths)
}

// Render returns the table as text. Lines are separated by "\n" with no
// trailing newline. An empty table renders as "".
func (t *Table) Render() string {
	return string(t.AppendTo(nil))
}

// String implements fmt.Stringer.
func (t *Table) String() string { return t.Render() }

// AppendTo appends the rendered table to dst and returns the extended
// buffer. Reuse a buffer across renders with buf = t.AppendTo(buf[:0]).
func (t *Table) AppendTo(dst []byte) []byte {
	return t.appendLayout(dst, t.layout())
}

// WriteTo writes the rendered table to w. It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.AppendTo(nil))
	return int64(n), err
}
