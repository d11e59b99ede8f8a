package classes

// Item 15: minimize mutability.
//
// An immutable value type: no setters, all fields unexported, every
// operation returns a new value. Immutable values are inherently safe to
// share between goroutines and to use as map keys.

// Complex is an immutable complex number.
type Complex struct {
	re, im float64
}

// NewComplex returns the value re + im·i.
func NewComplex(re, im float64) Complex { return Complex{re: re, im: im} }

// Re reports the real part.
func (c Complex) Re() float64 { return c.re }

// Im reports the imaginary part.
func (c Complex) Im() float64 { return c.im }

// Add returns the sum; the receiver is untouched. Note the functional
// naming (Add, not SetSum): operations produce values.
func (c Complex) Add(o Complex) Complex {
	return Complex{re: c.re + o.re, im: c.im + o.im}
}

// Sub returns the difference.
func (c Complex) Sub(o Complex) Complex {
	return Complex{re: c.re - o.re, im: c.im - o.im}
}

// Mul returns the product.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		re: c.re*o.re - c.im*o.im,
		im: c.re*o.im + c.im*o.re,
	}
}

// Div returns the quotient. Division by zero yields IEEE infinities, same
// as float64 division.
func (c Complex) Div(o Complex) Complex {
	d := o.re*o.re + o.im*o.im
	return Complex{
		re: (c.re*o.re + c.im*o.im) / d,
		im: (c.im*o.re - c.re*o.im) / d,
	}
}

// Frequently used values, shared freely because nothing can change them.
var (
	ComplexZero = NewComplex(0, 0)
	ComplexOne  = NewComplex(1, 0)
	ComplexI    = NewComplex(0, 1)
)
