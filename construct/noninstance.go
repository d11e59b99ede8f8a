package construct

// Item 4: enforce noninstantiability.
//
// Java needs a private constructor to keep a utility class from being
// instantiated. Go's equivalent is simpler: a utility "class" is just a set
// of package-level functions, and there is nothing to instantiate. When a
// namespace type is wanted anyway, give it an unexported field so outside
// packages cannot construct it with a literal.

// Angles groups angle conversions. The zero-width unexported field makes
// construct.Angles{...} a compile error outside this package; the package
// exposes the single value below instead.
type Angles struct {
	_ struct{}
}

// AngleUtil is the only usable Angles value.
var AngleUtil = Angles{}

// DegToRad converts degrees to radians.
func (Angles) DegToRad(deg float64) float64 { return deg * 3.141592653589793 / 180 }

// RadToDeg converts radians to degrees.
func (Angles) RadToDeg(rad float64) float64 { return rad * 180 / 3.141592653589793 }
