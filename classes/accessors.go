package classes

// Item 14: in exported APIs, prefer accessor methods to exported mutable
// fields.
//
// Go is more relaxed than the book here: a plain data holder used inside a
// package, or a struct that is honestly just data (time.Time is not, an
// options struct is), may export fields. The rule bites for exported types
// with invariants: once a field is exported you can never again validate
// writes to it.

// degeneratePoint exports its fields with an invariant nobody can enforce
// (both must stay non-negative) - fine inside the package, a trap if
// exported.
type degeneratePoint struct {
	X, Y float64
}

// Quadrant is the accessor-based version: fields stay unexported, the
// constructor validates once, and the methods can evolve (caching, derived
// values) without breaking callers.
type Quadrant struct {
	x, y float64
}

// NewQuadrant clamps coordinates into the first quadrant.
func NewQuadrant(x, y float64) Quadrant {
	return Quadrant{x: max(x, 0), y: max(y, 0)}
}

// X reports the x coordinate.
func (q Quadrant) X() float64 { return q.x }

// Y reports the y coordinate.
func (q Quadrant) Y() float64 { return q.y }
