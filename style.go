package tabular

import (
	"fmt"
	"strings"
)

// Style selects the border glyphs and structure of a rendered table.
type Style int

const (
	Classic  Style = iota // +-+|
	Modern                // ┌─┐└┘│┬┴├┤┼
	Minimal               // header rule only, no borders
	Compact               // column separators, no outer border
	Markdown              // | a | b |
)

var styles = []Style{Classic, Modern, Minimal, Compact, Markdown}

var styleNames = map[Style]string{
	Classic:  "classic",
	Modern:   "modern",
	Minimal:  "minimal",
	Compact:  "compact",
	Markdown: "markdown",
}

// Styles returns every supported style.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// String returns the style name.
func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses a style name, ignoring case.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if strings.EqualFold(strings.TrimSpace(s), styleNames[st]) {
			return st, nil
		}
	}
	return Classic, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if _, ok := styleNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

// styleSpec is one entry of the style table.
type styleSpec struct {
	bc borderChars

	outer      bool // top and bottom border lines
	edges      bool // left and right border glyphs on every line
	headerRule bool // rule between header and body
	rowRules   bool // rule between body rows may be requested
	markdown   bool // synthesized header, `---` separator, repeated pipes for spans
	trimRight  bool // strip trailing blanks from each line
}

var (
	asciiChars = borderChars{
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	}
	boxChars = borderChars{
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	}
	ruleChars = borderChars{
		horizontal: "─", vertical: " ",
		topTee: "─", bottomTee: "─", cross: "─",
	}
	pipeChars = borderChars{
		topLeft: "|", topRight: "|", bottomLeft: "|", bottomRight: "|",
		horizontal: "-", vertical: "|",
		topTee: "|", bottomTee: "|", leftTee: "|", rightTee: "|",
		cross: "|",
	}
)

// spec returns the style table entry for s. Unknown values render as Classic.
func (s Style) spec() styleSpec {
	switch s {
	case Modern:
		return styleSpec{bc: boxChars, outer: true, edges: true, headerRule: true, rowRules: true}
	case Minimal:
		return styleSpec{bc: ruleChars, headerRule: true, trimRight: true}
	case Compact:
		return styleSpec{bc: boxChars, headerRule: true, trimRight: true}
	case Markdown:
		return styleSpec{bc: pipeChars, edges: true, headerRule: true, markdown: true}
	default:
		return styleSpec{bc: asciiChars, outer: true, edges: true, headerRule: true, rowRules: true}
	}
}

// junction returns the glyph where a horizontal rule crosses an interior
// column boundary, given whether a vertical separator meets it from the
// row above and from the row below.
func (bc borderChars) junction(above, below bool) string {
	switch {
	case above && below:
		return bc.cross
	case above:
		return bc.bottomTee
	case below:
		return bc.topTee
	default:
		return bc.horizontal
	}
}

// overhead returns the number of non-content columns in a table of n
// columns: padding, spacing, separators and edges.
func (sp styleSpec) overhead(n int, pad Padding, spacing int) int {
	if n == 0 {
		return 0
	}
	o := n*pad.horizontal() + (n-1)*(spacing+1)
	if sp.edges {
		o += 2
	}
	return o
}
