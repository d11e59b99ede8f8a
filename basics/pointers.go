package basics

// Item 49: prefer values to pointers-to-values for primitives.
//
// *int is Go's boxed primitive: it buys nullability and identity, and both
// are traps when all you wanted was a number. == compares the pointers, a
// nil sneaks in through every struct zero value, and each box is a heap
// allocation.

// boxedEqualWrong compares boxes - DON'T DO THIS. Two distinct pointers to
// equal values compare unequal.
func boxedEqualWrong(a, b *int) bool {
	return a == b
}

// BoxedEqual compares the values, treating nil as "absent": two absent
// values are equal, absent never equals present.
func BoxedEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Counter shows the value alternative: when zero is a meaningful count, no
// pointer and no nil case exist at all.
type Counter struct {
	N int
}

// Incr adds one.
func (c *Counter) Incr() { c.N++ }
