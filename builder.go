package tabular

// Builder configures a Table fluently. The first configuration error is
// kept and returned by Build and Render; later calls become no-ops.
//
//	out, err := tabular.NewBuilder().
//		Style(tabular.Modern).
//		Header("ID", "Name", "Score").
//		Constrain(1, tabular.Fixed(20)).
//		Align(2, tabular.AlignRight).
//		Row("1", "Kata", "95.5").
//		Render()
type Builder struct {
	t   *Table
	err error
}

// NewBuilder returns a builder for an empty Classic table.
func NewBuilder() *Builder {
	return &Builder{t: New()}
}

func (b *Builder) do(fn func(t *Table) error) *Builder {
	if b.err == nil {
		b.err = fn(b.t)
	}
	return b
}

// Style sets the table style.
func (b *Builder) Style(s Style) *Builder {
	return b.do(func(t *Table) error { t.SetStyle(s); return nil })
}

// StyleName sets the table style by name, as accepted by ParseStyle.
func (b *Builder) StyleName(name string) *Builder {
	return b.do(func(t *Table) error {
		s, err := ParseStyle(name)
		if err != nil {
			return err
		}
		t.SetStyle(s)
		return nil
	})
}

// Header sets a header of plain cells.
func (b *Builder) Header(values ...string) *Builder {
	return b.do(func(t *Table) error { t.Header(values...); return nil })
}

// HeaderRow sets a prepared header row.
func (b *Builder) HeaderRow(r Row) *Builder {
	return b.do(func(t *Table) error { return t.SetHeaders(r) })
}

// Row appends a row of plain cells.
func (b *Builder) Row(values ...string) *Builder {
	return b.do(func(t *Table) error { t.Row(values...); return nil })
}

// AddRow appends a prepared row.
func (b *Builder) AddRow(r Row) *Builder {
	return b.do(func(t *Table) error { return t.AddRow(r) })
}

// Rows appends one row of plain cells per record.
func (b *Builder) Rows(records [][]string) *Builder {
	return b.do(func(t *Table) error {
		for _, rec := range records {
			t.Row(rec...)
		}
		return nil
	})
}

// Constrain sets the width constraint of column col.
func (b *Builder) Constrain(col int, c Constraint) *Builder {
	return b.do(func(t *Table) error { return t.SetConstraint(col, c) })
}

// Align sets the alignment of column col.
func (b *Builder) Align(col int, a Alignment) *Builder {
	return b.do(func(t *Table) error { return t.Align(col, a) })
}

// VAlign sets the vertical alignment of multi-line rows.
func (b *Builder) VAlign(v VAlign) *Builder {
	return b.do(func(t *Table) error { t.SetVAlign(v); return nil })
}

// Padding sets the cell padding.
func (b *Builder) Padding(p Padding) *Builder {
	return b.do(func(t *Table) error { return t.SetPadding(p) })
}

// Spacing sets the blank columns between logical columns.
func (b *Builder) Spacing(n int) *Builder {
	return b.do(func(t *Table) error { return t.SetSpacing(n) })
}

// Truncate enables truncation at limit display columns.
func (b *Builder) Truncate(limit int) *Builder {
	return b.do(func(t *Table) error { return t.SetTruncate(limit) })
}

// TruncateColumn enables truncation at limit display columns for column
// col only.
func (b *Builder) TruncateColumn(col, limit int) *Builder {
	return b.do(func(t *Table) error { return t.SetColumnTruncate(col, limit) })
}

// AvailableWidth sets the width Proportional columns divide.
func (b *Builder) AvailableWidth(n int) *Builder {
	return b.do(func(t *Table) error { return t.SetAvailableWidth(n) })
}

// RowSeparator draws rules between data rows.
func (b *Builder) RowSeparator(on bool) *Builder {
	return b.do(func(t *Table) error { t.SetRowSeparator(on); return nil })
}

// Build returns the configured table, or the first configuration error.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.t, nil
}

// Render builds the table and renders it.
func (b *Builder) Render() (string, error) {
	t, err := b.Build()
	if err != nil {
		return "", err
	}
	return t.Render(), nil
}

// RenderData renders records in style s, using the first record as the
// header.
func RenderData(s Style, records [][]string) string {
	t := New().SetStyle(s)
	if len(records) > 0 {
		t.Header(records[0]...)
		records = records[1:]
	}
	for _, rec := range records {
		t.Row(rec...)
	}
	return t.Render()
}

// RenderRows renders records in style s without a header.
func RenderRows(s Style, records [][]string) string {
	t := New().SetStyle(s)
	for _, rec := range records {
		t.Row(rec...)
	}
	return t.Render()
}
