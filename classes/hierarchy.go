package classes

import (
	"errors"
	"math"
)

// Item 20: prefer an interface hierarchy to a tagged struct.
//
// A tagged struct carries every variant's fields plus a kind discriminator,
// and each operation is a switch that must stay in sync with the tags. The
// interface version makes adding a variant a local change and makes an
// unhandled variant a compile error at the constructor, not a runtime
// default case.

// figureKind tags the variant.
type figureKind int

const (
	figureRectangle figureKind = iota
	figureCircle
)

// taggedFigure is the tagged version - DON'T DO THIS. Half its fields are
// dead weight for any given value.
type taggedFigure struct {
	kind figureKind

	// rectangle fields
	length, width float64

	// circle field
	radius float64
}

// errUnknownFigure guards the switch's default arm; needing it is the smell.
var errUnknownFigure = errors.New("classes: unknown figure kind")

func (f taggedFigure) area() (float64, error) {
	switch f.kind {
	case figureRectangle:
		return f.length * f.width, nil
	case figureCircle:
		return math.Pi * f.radius * f.radius, nil
	default:
		return 0, errUnknownFigure
	}
}

// Shape is the interface version: one method, one implementation per
// variant, no dead fields, no default arm.
type Shape interface {
	Area() float64
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Length, Width float64
}

// Area implements Shape.
func (r Rectangle) Area() float64 { return r.Length * r.Width }

// Circle is a circle.
type Circle struct {
	Radius float64
}

// Area implements Shape.
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Square shows hierarchy reuse without inheritance: a square is composed
// from, not derived from, Rectangle.
type Square struct {
	Side float64
}

// Area implements Shape.
func (s Square) Area() float64 { return Rectangle{Length: s.Side, Width: s.Side}.Area() }
