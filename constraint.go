package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstraintKind identifies the variant of a [Constraint].
type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintFixed
	ConstraintMin
	ConstraintMax
	ConstraintProportional
	ConstraintWrap
)

// Constraint declares how the width of one column is resolved.
// The zero value is no constraint: the column is sized by its content.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Fixed sets the column width to exactly n regardless of content.
func Fixed(n int) Constraint { return Constraint{Kind: ConstraintFixed, Value: n} }

// Min raises the column width to at least n.
func Min(n int) Constraint { return Constraint{Kind: ConstraintMin, Value: n} }

// Max caps the column width at n. Wider content wraps, or truncates when
// the table has a truncation limit.
func Max(n int) Constraint { return Constraint{Kind: ConstraintMax, Value: n} }

// Proportional sets the column width to p percent of the available width.
func Proportional(p int) Constraint { return Constraint{Kind: ConstraintProportional, Value: p} }

// Wrap sets the column width to n and always word-wraps, even when the
// table truncates.
func Wrap(n int) Constraint { return Constraint{Kind: ConstraintWrap, Value: n} }

func (c Constraint) validate() error {
	if c.Kind < ConstraintNone || c.Kind > ConstraintWrap {
		return fmt.Errorf("%w: kind %d", ErrInvalidConstraint, int(c.Kind))
	}
	if c.Value < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeValue, c)
	}
	if c.Kind == ConstraintProportional && c.Value > 100 {
		return fmt.Errorf("%w: %d%% exceeds 100%%", ErrInvalidProportion, c.Value)
	}
	return nil
}

// String returns the constraint in the form accepted by [ParseConstraint].
func (c Constraint) String() string {
	switch c.Kind {
	case ConstraintNone:
		return "auto"
	case ConstraintFixed:
		return "fixed:" + strconv.Itoa(c.Value)
	case ConstraintMin:
		return "min:" + strconv.Itoa(c.Value)
	case ConstraintMax:
		return "max:" + strconv.Itoa(c.Value)
	case ConstraintProportional:
		return strconv.Itoa(c.Value) + "%"
	case ConstraintWrap:
		return "wrap:" + strconv.Itoa(c.Value)
	default:
		return fmt.Sprintf("Constraint(%d:%d)", int(c.Kind), c.Value)
	}
}

var constraintKinds = map[string]func(int) Constraint{
	"fixed": Fixed,
	"min":   Min,
	"max":   Max,
	"wrap":  Wrap,
}

// ParseConstraint parses "auto", "fixed:N", "min:N", "max:N", "wrap:N" or
// "P%". Names are case-insensitive.
func ParseConstraint(s string) (Constraint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return Constraint{}, nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: %q", ErrInvalidConstraint, s)
		}
		c := Proportional(n)
		return c, c.validate()
	}
	name, num, ok := strings.Cut(s, ":")
	ctor, known := constraintKinds[name]
	if !ok || !known {
		return Constraint{}, fmt.Errorf("%w: %q", ErrInvalidConstraint, s)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: %q", ErrInvalidConstraint, s)
	}
	c := ctor(n)
	return c, c.validate()
}

// MarshalText implements encoding.TextMarshaler.
func (c Constraint) MarshalText() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Constraint) UnmarshalText(text []byte) error {
	v, err := ParseConstraint(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
