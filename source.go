package tabular

import "iter"

// Rower provides the cells of one row.
type Rower interface {
	Row() []string
}

// Headed provides column headers.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment.
type Aligned interface {
	Alignments() []Alignment
}

// Bordered selects the table style.
// Default: Classic.
type Bordered interface {
	Border() Style
}

// Wrapped provides per-column wrap widths. A zero means no wrapping for
// that column.
type Wrapped interface {
	WrapWidths() []int
}

// Truncated provides per-column maximum widths. Cells wider than the
// maximum are cut to a single line ending in "...". A zero means no limit
// for that column.
type Truncated interface {
	MaxWidths() []int
}

// FromRowers builds a table with one row per item. The optional interfaces
// of the first item configure the table; a configuration error, such as a
// negative width, is returned.
func FromRowers[T Rower](items ...T) (*Table, error) {
	t := New()
	if len(items) == 0 {
		return t, nil
	}
	first := any(items[0])
	if h, ok := first.(Headed); ok {
		t.Header(h.Header()...)
	}
	if b, ok := first.(Bordered); ok {
		t.SetStyle(b.Border())
	}
	if a, ok := first.(Aligned); ok {
		for col, al := range a.Alignments() {
			if err := t.Align(col, al); err != nil {
				return nil, err
			}
		}
	}
	if m, ok := first.(Truncated); ok {
		if err := constrainEach(t, m.MaxWidths(), Max); err != nil {
			return nil, err
		}
		for col, w := range m.MaxWidths() {
			if err := t.SetColumnTruncate(col, w); err != nil {
				return nil, err
			}
		}
	}
	if w, ok := first.(Wrapped); ok {
		if err := constrainEach(t, w.WrapWidths(), Wrap); err != nil {
			return nil, err
		}
	}
	for _, item := range items {
		t.Row(item.Row()...)
	}
	return t, nil
}

func constrainEach(t *Table, widths []int, ctor func(int) Constraint) error {
	for col, w := range widths {
		if w == 0 {
			continue
		}
		if err := t.SetConstraint(col, ctor(w)); err != nil {
			return err
		}
	}
	return nil
}

// AppendSeq appends one row per record produced by seq.
func (t *Table) AppendSeq(seq iter.Seq[[]string]) {
	for rec := range seq {
		t.rows = append(t.rows, NewRow(rec...))
	}
	t.invalidate()
}

// AppendChan appends one row per record received from ch until it is
// closed.
func (t *Table) AppendChan(ch <-chan []string) {
	t.AppendSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// All yields every data row in order.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, r := range t.rows {
			if !yield(i, r.clone()) {
				return
			}
		}
	}
}
