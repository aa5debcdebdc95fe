package tabular

// DefaultAvailableWidth is the total table width used to resolve
// Proportional constraints when no available width was set.
const DefaultAvailableWidth = 120

// markdownMinWidth keeps the `---` separator valid for content-driven
// Markdown columns.
const markdownMinWidth = 3

// resolution is the output of width resolution: one width per logical
// column.
type resolution struct {
	widths []int
}

// resolveWidths computes the width of every logical column of t.
func (t *Table) resolveWidths(n int, sp styleSpec) resolution {
	res := resolution{widths: t.naturalWidths(n, sp)}

	proportional := false
	for i := range n {
		c := t.constraints[i]
		switch c.Kind {
		case ConstraintFixed:
			res.widths[i] = c.Value
		case ConstraintMin:
			res.widths[i] = max(res.widths[i], c.Value)
		case ConstraintMax:
			res.widths[i] = min(res.widths[i], c.Value)
		case ConstraintWrap:
			res.widths[i] = c.Value
		case ConstraintProportional:
			proportional = true
		case ConstraintNone:
		}
	}
	if proportional {
		t.distribute(res.widths, sp)
	}
	return res
}

// naturalWidths measures the widest line of content touching each column.
// A spanning cell spreads its width, plus the separators it covers, evenly
// over its columns.
func (t *Table) naturalWidths(n int, sp styleSpec) []int {
	widths := make([]int, n)
	interior := t.interior(sp)

	measure := func(r Row) {
		col := 0
		for _, c := range r.cells {
			span := c.Span()
			w := textWidth(t.prepare(c.content, col))
			if span == 1 {
				if col < n {
					widths[col] = max(widths[col], w)
				}
			} else if w > 0 {
				share := ceilDiv(w+(span-1)*interior, span)
				for i := col; i < col+span && i < n; i++ {
					widths[i] = max(widths[i], share)
				}
			}
			col += span
		}
	}
	if t.headers != nil {
		measure(*t.headers)
	}
	for _, r := range t.rows {
		measure(r)
	}

	if sp.markdown {
		for i := range widths {
			switch t.constraints[i].Kind {
			case ConstraintNone, ConstraintMin:
				widths[i] = max(widths[i], markdownMinWidth)
			}
		}
	}
	return widths
}

// distribute resolves Proportional columns against the available width and
// splits what remains evenly over the unconstrained columns, earlier
// columns first. With no unconstrained column the remainder goes to the
// Proportional columns. An unconstrained column never drops below one
// column, or markdownMinWidth in Markdown, so its content wraps rather
// than vanishing when the proportions use up the width.
func (t *Table) distribute(widths []int, sp styleSpec) {
	total := t.available
	if total <= 0 {
		total = DefaultAvailableWidth
	}
	avail := max(0, total-sp.overhead(len(widths), t.padding, t.spacing))

	var free, prop []int
	used := 0
	for i := range widths {
		c := t.constraints[i]
		switch c.Kind {
		case ConstraintProportional:
			widths[i] = avail * c.Value / 100
			prop = append(prop, i)
		case ConstraintNone:
			free = append(free, i)
			continue
		case ConstraintFixed, ConstraintMin, ConstraintMax, ConstraintWrap:
		}
		used += widths[i]
	}

	leftover := max(0, avail-used)
	targets := free
	if len(targets) == 0 {
		targets = prop
	}
	for _, i := range free {
		widths[i] = 0
	}
	if len(targets) > 0 {
		share, extra := leftover/len(targets), leftover%len(targets)
		for k, i := range targets {
			widths[i] += share
			if k < extra {
				widths[i]++
			}
		}
	}

	floor := 1
	if sp.markdown {
		floor = markdownMinWidth
	}
	for _, i := range free {
		widths[i] = max(widths[i], floor)
	}
}

// interior returns the width a spanning cell gains for each column
// boundary it covers: padding and spacing, plus the separator glyph in
// styles that merge spans. Markdown keeps its pipes.
func (t *Table) interior(sp styleSpec) int {
	n := t.padding.horizontal() + t.spacing
	if !sp.markdown {
		n++
	}
	return n
}

// prepare returns content as it will be laid out in column col: cut to the
// truncation limit when truncation applies there.
func (t *Table) prepare(content string, col int) string {
	if limit := t.limitFor(col); limit > 0 {
		return TruncateText(content, limit)
	}
	return content
}

// limitFor returns the truncation limit in effect for column col, or 0
// when content in that column wraps. A column limit overrides the table
// limit; Wrap columns never truncate.
func (t *Table) limitFor(col int) int {
	if t.constraints[col].Kind == ConstraintWrap {
		return 0
	}
	if limit, ok := t.colTruncate[col]; ok {
		return limit
	}
	return t.truncate
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
