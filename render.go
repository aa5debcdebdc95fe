package tabular

import (
	"bytes"
	"strings"
)

type ruleKind int

const (
	ruleTop ruleKind = iota
	ruleMiddle
	ruleBottom
)

// lineWriter appends newline-separated lines to a caller-owned buffer.
// No separator follows the last line.
type lineWriter struct {
	dst   []byte
	lines int
	start int
	trim  bool
}

func (w *lineWriter) begin() {
	if w.lines > 0 {
		w.dst = append(w.dst, '\n')
	}
	w.start = len(w.dst)
	w.lines++
}

func (w *lineWriter) end() {
	if w.trim {
		kept := bytes.TrimRight(w.dst[w.start:], " ")
		w.dst = w.dst[:w.start+len(kept)]
	}
}

func (w *lineWriter) str(s string) { w.dst = append(w.dst, s...) }

func (w *lineWriter) repeat(s string, n int) {
	for range n {
		w.dst = append(w.dst, s...)
	}
}

// renderer walks a layout and emits the glyphs of one style.
type renderer struct {
	lineWriter
	sp      styleSpec
	l       *layout
	pad     Padding
	spacing int
	aligns  map[int]Alignment
}

// appendLayout renders l onto dst.
func (t *Table) appendLayout(dst []byte, l *layout) []byte {
	n := l.columns()
	if n == 0 || (l.header == nil && len(l.rows) == 0) {
		return dst
	}
	sp := t.style.spec()
	r := &renderer{
		lineWriter: lineWriter{dst: dst, trim: sp.trimRight},
		sp:         sp,
		l:          l,
		pad:        t.padding,
		spacing:    t.spacing,
		aligns:     t.aligns,
	}

	first := l.header
	if first == nil {
		first = &l.rows[0]
	}
	last := l.header
	if len(l.rows) > 0 {
		last = &l.rows[len(l.rows)-1]
	}

	if sp.outer {
		r.rule(ruleTop, nil, first)
	}
	if l.header != nil {
		r.row(l.header)
		switch {
		case sp.markdown:
			r.markdownSeparator()
		case sp.headerRule && (len(l.rows) > 0 || !sp.outer):
			var below *rowLayout
			if len(l.rows) > 0 {
				below = &l.rows[0]
			}
			r.rule(ruleMiddle, l.header, below)
		}
	}
	for i := range l.rows {
		if i > 0 && sp.rowRules && t.rowSeparator {
			r.rule(ruleMiddle, &l.rows[i-1], &l.rows[i])
		}
		r.row(&l.rows[i])
	}
	if sp.outer {
		r.rule(ruleBottom, last, nil)
	}
	return r.dst
}

// row emits every line of rl.
func (r *renderer) row(rl *rowLayout) {
	bc := r.sp.bc
	for h := range rl.height {
		r.begin()
		if r.sp.edges {
			r.str(bc.vertical)
		}
		for j, c := range rl.cells {
			r.str(c.lines[h])
			if r.sp.markdown {
				r.repeat(bc.vertical, c.span-1)
			}
			if j < len(rl.cells)-1 {
				r.repeat(" ", r.spacing)
				r.str(bc.vertical)
			}
		}
		if r.sp.edges {
			r.str(bc.vertical)
		}
		r.end()
	}
}

// rule emits a horizontal line between above and below. Either may be nil
// at the outer border. Junctions reflect which vertical separators meet the
// line, so spanned boundaries stay a straight run.
func (r *renderer) rule(kind ruleKind, above, below *rowLayout) {
	bc := r.sp.bc
	n := r.l.columns()
	var up, down []bool
	if above != nil {
		up = above.boundaries(n)
	}
	if below != nil {
		down = below.boundaries(n)
	}

	r.begin()
	if r.sp.edges {
		switch kind {
		case ruleTop:
			r.str(bc.topLeft)
		case ruleBottom:
			r.str(bc.bottomLeft)
		case ruleMiddle:
			r.str(bc.leftTee)
		}
	}
	for i, w := range r.l.widths {
		r.repeat(bc.horizontal, r.pad.horizontal()+w)
		if i == n-1 {
			break
		}
		r.repeat(bc.horizontal, r.spacing)
		r.str(bc.junction(up != nil && up[i+1], down != nil && down[i+1]))
	}
	if r.sp.edges {
		switch kind {
		case ruleTop:
			r.str(bc.topRight)
		case ruleBottom:
			r.str(bc.bottomRight)
		case ruleMiddle:
			r.str(bc.rightTee)
		}
	}
	r.end()
}

// markdownSeparator emits the `| --- |` line, with alignment markers for
// columns that declare an alignment.
func (r *renderer) markdownSeparator() {
	bc := r.sp.bc
	n := r.l.columns()
	r.begin()
	r.str(bc.vertical)
	for i, w := range r.l.widths {
		r.repeat(" ", r.pad.Left)
		r.str(markdownDashes(w, r.aligns[i]))
		r.repeat(" ", r.pad.Right)
		if i < n-1 {
			r.repeat(" ", r.spacing)
		}
		r.str(bc.vertical)
	}
	r.end()
}

func markdownDashes(width int, align Alignment) string {
	switch {
	case align == AlignRight && width >= 2:
		return strings.Repeat("-", width-1) + ":"
	case align == AlignCenter && width >= 3:
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return strings.Repeat("-", width)
	}
}
