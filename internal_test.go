package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakWordWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is two columns wide. At width 1 Truncate returns "" and the
	// safety branch emits one rune per chunk instead of looping forever.
	assert.Equal(t, []string{"你", "好"}, breakWord("你好", 1))
}

func TestBreakWordInvalidUTF8(t *testing.T) {
	t.Parallel()
	chunks := breakWord("ab\xffcd", 2)
	assert.GreaterOrEqual(t, len(chunks), 2)
	assert.Equal(t, "ab\xffcd", strings.Join(chunks, ""))
}

func TestBreakWordBasic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Hel", "lo"}, breakWord("Hello", 3))
}

func TestFitLine(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		width int
		want  string
	}{
		"fits":        {input: "abc", width: 5, want: "abc"},
		"ellipsis":    {input: "abcdefgh", width: 6, want: "abc..."},
		"narrow":      {input: "abcdefgh", width: 3, want: "abc"},
		"zero":        {input: "abc", width: 0, want: ""},
		"wide runes":  {input: "日本語テキスト", width: 7, want: "日本..."},
		"exact width": {input: "abcd", width: 4, want: "abcd"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fitLine(tt.input, tt.width))
		})
	}
}

func TestTextWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, textWidth("ab\nabcde\r\nabc"))
	assert.Equal(t, 4, textWidth("日本"))
	assert.Equal(t, 0, textWidth(""))
}

func TestValign(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v      VAlign
		height int
		want   []string
	}{
		"top":          {v: VAlignTop, height: 3, want: []string{"x", "", ""}},
		"bottom":       {v: VAlignBottom, height: 3, want: []string{"", "", "x"}},
		"middle odd":   {v: VAlignMiddle, height: 3, want: []string{"", "x", ""}},
		"middle even":  {v: VAlignMiddle, height: 4, want: []string{"", "x", "", ""}},
		"already tall": {v: VAlignBottom, height: 1, want: []string{"x"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, valign([]string{"x"}, tt.height, tt.v))
		})
	}
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignCell("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", alignCell("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "toolong", alignCell("toolong", 3, AlignRight))
}

func TestJunction(t *testing.T) {
	t.Parallel()
	bc := boxChars
	assert.Equal(t, "┼", bc.junction(true, true))
	assert.Equal(t, "┴", bc.junction(true, false))
	assert.Equal(t, "┬", bc.junction(false, true))
	assert.Equal(t, "─", bc.junction(false, false))
}

func TestOverhead(t *testing.T) {
	t.Parallel()
	pad := Padding{Left: 1, Right: 1}
	assert.Equal(t, 10, Classic.spec().overhead(3, pad, 0))
	assert.Equal(t, 8, Compact.spec().overhead(3, pad, 0))
	assert.Equal(t, 14, Markdown.spec().overhead(3, pad, 2))
}

func TestStyleSpec(t *testing.T) {
	t.Parallel()
	for _, s := range Styles() {
		sp := s.spec()
		assert.True(t, sp.headerRule, s.String())
		assert.Equal(t, s == Classic || s == Modern, sp.outer, s.String())
		assert.Equal(t, s == Classic || s == Modern, sp.rowRules, s.String())
		assert.Equal(t, s == Minimal || s == Compact, sp.trimRight, s.String())
		assert.Equal(t, s == Markdown, sp.markdown, s.String())
	}
}

func TestCellAtAndBoundary(t *testing.T) {
	t.Parallel()
	wide, err := NewCell("b").WithSpan(2)
	require.NoError(t, err)
	r := RowOf(NewCell("a"), wide, NewCell("c"))

	c, i, ok := r.cellAt(2)
	require.True(t, ok)
	assert.Equal(t, "b", c.content)
	assert.Equal(t, 1, i)

	_, _, ok = r.cellAt(4)
	assert.False(t, ok)

	assert.True(t, r.boundary(0))
	assert.True(t, r.boundary(1))
	assert.False(t, r.boundary(2))
	assert.True(t, r.boundary(3))
	assert.True(t, r.boundary(4))
	assert.True(t, r.boundary(9))
}

func TestCellFittedMemo(t *testing.T) {
	t.Parallel()
	c := NewCell("hello world")
	first := c.fitted(5, 0)
	assert.Equal(t, []string{"hello", "world"}, first)
	assert.True(t, c.memo.ok)

	assert.Equal(t, []string{"he..."}, c.fitted(5, 3))
	assert.Equal(t, 3, c.memo.limit)
	assert.Equal(t, []string{"hello world"}, c.fitted(20, 0))
}

func TestShiftKeys(t *testing.T) {
	t.Parallel()
	m := map[int]string{0: "a", 2: "b", 5: "c"}
	assert.Equal(t, map[int]string{0: "a", 3: "b", 6: "c"}, shiftKeys(m, 1, 1))
	assert.Equal(t, map[int]string{0: "a", 1: "b", 4: "c"}, shiftKeys(m, 2, -1))
}

func TestLineWriterTrim(t *testing.T) {
	t.Parallel()
	w := lineWriter{dst: []byte("x"), trim: true}
	w.begin()
	w.str("a  ")
	w.end()
	w.begin()
	w.str("   ")
	w.end()
	w.begin()
	w.repeat("-", 3)
	w.end()
	assert.Equal(t, "xa\n\n---", string(w.dst))
}

func TestMarkdownDashes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "---", markdownDashes(3, AlignLeft))
	assert.Equal(t, "--:", markdownDashes(3, AlignRight))
	assert.Equal(t, ":---:", markdownDashes(5, AlignCenter))
	assert.Equal(t, "--", markdownDashes(2, AlignCenter))
	assert.Equal(t, "", markdownDashes(0, AlignRight))
}

func TestCheckSpans(t *testing.T) {
	t.Parallel()
	wide, err := NewCell("x").WithSpan(3)
	require.NoError(t, err)
	r := RowOf(wide)
	require.NoError(t, checkSpans(r, 0))
	require.NoError(t, checkSpans(r, 3))
	assert.ErrorIs(t, checkSpans(r, 2), ErrSpanOverflow)
}
