package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidSpan       = errors.New("invalid span")
	ErrSpanOverflow      = errors.New("span exceeds table columns")
	ErrSpanConflict      = errors.New("column index falls inside a spanning cell")
	ErrNegativeValue     = errors.New("negative value")
	ErrInvalidProportion = errors.New("invalid proportion")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrUnknownStyle      = errors.New("unknown style")
	ErrUnknownAlignment  = errors.New("unknown alignment")
	ErrInvalidConstraint = errors.New("invalid constraint")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Alignment controls horizontal text alignment within a cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "left", "center" or "right", ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return a, nil
		}
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if _, ok := alignNames[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlignment, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// VAlign controls where the lines of a short cell sit inside a taller row.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

var valignNames = map[VAlign]string{
	VAlignTop:    "top",
	VAlignMiddle: "middle",
	VAlignBottom: "bottom",
}

// String returns the vertical alignment name.
func (v VAlign) String() string {
	if s, ok := valignNames[v]; ok {
		return s
	}
	return fmt.Sprintf("VAlign(%d)", int(v))
}

// ParseVAlign parses "top", "middle" or "bottom", ignoring case.
func ParseVAlign(s string) (VAlign, error) {
	for v, name := range valignNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return v, nil
		}
	}
	return VAlignTop, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// MarshalText implements encoding.TextMarshaler.
func (v VAlign) MarshalText() ([]byte, error) {
	if _, ok := valignNames[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlignment, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VAlign) UnmarshalText(text []byte) error {
	p, err := ParseVAlign(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Padding is the blank space placed around the content of every cell.
// Left and Right are columns, Top and Bottom are lines.
type Padding struct {
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// DefaultPadding is one column on each side and no vertical padding.
var DefaultPadding = Padding{Left: 1, Right: 1}

// UniformPadding returns horizontal padding of n on both sides.
func UniformPadding(n int) Padding {
	return Padding{Left: n, Right: n}
}

func (p Padding) validate() error {
	if p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
		return fmt.Errorf("%w: padding %+v", ErrNegativeValue, p)
	}
	return nil
}

func (p Padding) horizontal() int { return p.Left + p.Right }
