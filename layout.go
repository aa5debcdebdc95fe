package tabular

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// layout is the memoized result of width resolution and line fitting.
// The renderer only reads it.
type layout struct {
	resolution
	header *rowLayout
	rows   []rowLayout
}

type rowLayout struct {
	cells  []cellLayout
	height int
}

// cellLayout holds the final lines of one cell. Every line is exactly the
// cell's area wide: left padding, aligned content, right padding.
type cellLayout struct {
	start, span int
	lines       []string
}

// columns reports how many logical columns the layout covers.
func (l *layout) columns() int { return len(l.widths) }

// boundaries marks, for each interior column boundary, whether a cell
// starts there. Index k is the boundary on the left of column k.
func (rl *rowLayout) boundaries(n int) []bool {
	b := make([]bool, n+1)
	for _, c := range rl.cells {
		b[c.start] = true
	}
	b[n] = true
	return b
}

// buildLayout runs width resolution and lays out the header and rows.
func (t *Table) buildLayout() *layout {
	sp := t.style.spec()
	n := t.Cols()
	l := &layout{resolution: t.resolveWidths(n, sp)}

	header := t.headers
	if header == nil && sp.markdown && len(t.rows) > 0 {
		synth := NewRow(make([]string, n)...)
		header = &synth
	}
	if header != nil {
		rl := t.layoutRow(header, l, sp)
		l.header = &rl
	}
	l.rows = make([]rowLayout, len(t.rows))
	for i := range t.rows {
		l.rows[i] = t.layoutRow(&t.rows[i], l, sp)
	}
	return l
}

// layoutRow fits every cell of r to its span width, pads all cells to the
// row height, and applies horizontal padding and alignment.
func (t *Table) layoutRow(r *Row, l *layout, sp styleSpec) rowLayout {
	n := l.columns()
	var rl rowLayout
	aligns := make([]Alignment, 0, len(r.cells))

	col := 0
	for i := range r.cells {
		if col >= n {
			break
		}
		c := &r.cells[i]
		span := min(c.Span(), n-col)
		width := t.spanWidth(l.widths, col, span, sp)
		rl.cells = append(rl.cells, cellLayout{
			start: col,
			span:  span,
			lines: c.fitted(width, t.limitFor(col)),
		})
		aligns = append(aligns, t.alignFor(r, c, col))
		col += span
	}
	for ; col < n; col++ {
		rl.cells = append(rl.cells, cellLayout{start: col, span: 1, lines: []string{""}})
		aligns = append(aligns, t.alignFor(r, nil, col))
	}

	content := 1
	for _, c := range rl.cells {
		content = max(content, len(c.lines))
	}
	rl.height = content + t.padding.Top + t.padding.Bottom

	for i := range rl.cells {
		c := &rl.cells[i]
		width := t.spanWidth(l.widths, c.start, c.span, sp)
		lines := valign(c.lines, content, t.valign)
		out := make([]string, 0, rl.height)
		blank := t.padCell("", width, AlignLeft)
		for range t.padding.Top {
			out = append(out, blank)
		}
		for _, line := range lines {
			out = append(out, t.padCell(line, width, aligns[i]))
		}
		for range t.padding.Bottom {
			out = append(out, blank)
		}
		c.lines = out
	}
	return rl
}

// spanWidth returns the content width available to a cell covering span
// columns from start. Merging styles hand the covered separators to the
// cell; Markdown keeps one pipe per covered boundary.
func (t *Table) spanWidth(widths []int, start, span int, sp styleSpec) int {
	w := 0
	for i := start; i < start+span; i++ {
		w += widths[i]
	}
	return w + (span-1)*t.interior(sp)
}

// alignFor resolves the alignment of a cell at column col: an explicit
// cell alignment wins, then the column alignment, then the row default.
func (t *Table) alignFor(r *Row, c *Cell, col int) Alignment {
	if c != nil && c.hasAlign {
		return c.align
	}
	if a, ok := t.aligns[col]; ok {
		return a
	}
	return r.align
}

// valign pads lines to height with blank lines according to v. Any odd
// line of a middle alignment goes to the bottom.
func valign(lines []string, height int, v VAlign) []string {
	missing := height - len(lines)
	if missing <= 0 {
		return lines
	}
	top := 0
	switch v {
	case VAlignMiddle:
		top = missing / 2
	case VAlignBottom:
		top = missing
	case VAlignTop:
	}
	out := make([]string, 0, height)
	for range top {
		out = append(out, "")
	}
	out = append(out, lines...)
	for range missing - top {
		out = append(out, "")
	}
	return out
}

// padCell aligns s within width and adds the horizontal padding.
func (t *Table) padCell(s string, width int, a Alignment) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", t.padding.Left))
	sb.WriteString(alignCell(s, width, a))
	sb.WriteString(strings.Repeat(" ", t.padding.Right))
	return sb.String()
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
