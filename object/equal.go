package object

import "strings"

// Item 8: obey the equality contract.
//
// An Equal method must be an equivalence relation: reflexive, symmetric,
// transitive, consistent. The broken versions below each violate one leg;
// the corrected versions show the shape that cannot.

// CaseInsensitiveString compares case-insensitively with its own kind.
type CaseInsensitiveString struct {
	S string
}

// EqualAny is the broken variant - DON'T DO THIS. It also accepts a plain
// string, so cis.EqualAny("polish") is true while no string-side comparison
// can ever reciprocate. One-way interoperability breaks symmetry, and any
// map or dedup helper mixing the two types misbehaves.
func (c CaseInsensitiveString) EqualAny(o any) bool {
	switch v := o.(type) {
	case CaseInsensitiveString:
		return strings.EqualFold(c.S, v.S)
	case string:
		return strings.EqualFold(c.S, v)
	default:
		return false
	}
}

// Equal is the corrected variant: it compares only against its own type,
// which makes symmetry trivially hold.
func (c CaseInsensitiveString) Equal(o CaseInsensitiveString) bool {
	return strings.EqualFold(c.S, o.S)
}

// Point is a plain value type with coordinate equality.
type Point struct {
	X, Y int
}

// Equal reports coordinate equality.
func (p Point) Equal(o Point) bool { return p == o }

// ColorPoint extends Point with a value component. Go's embedding makes the
// Java trap reproducible: ColorPoint embeds Point, so a ColorPoint can be
// compared "as a Point" by anyone who reaches for the promoted method.
type ColorPoint struct {
	Point
	Color string
}

// equalMixed is the transitivity-breaking variant - DON'T DO THIS. It
// compares color-blind against a bare Point but in full against another
// ColorPoint, so red(1,2) == (1,2) == blue(1,2) while red(1,2) != blue(1,2).
func (c ColorPoint) equalMixed(o any) bool {
	switch v := o.(type) {
	case Point:
		return c.Point.Equal(v)
	case ColorPoint:
		return c.Point.Equal(v.Point) && c.Color == v.Color
	default:
		return false
	}
}

// Equal is the corrected variant: composition instead of substitutability.
// A ColorPoint is never equal to a Point; callers who want the color-blind
// view ask for it explicitly.
func (c ColorPoint) Equal(o ColorPoint) bool {
	return c.Point.Equal(o.Point) && c.Color == o.Color
}

// AsPoint returns the color-blind view.
func (c ColorPoint) AsPoint() Point { return c.Point }
