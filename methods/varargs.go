package methods

import "errors"

// Item 42: use variadics judiciously; require the arguments that are
// required.
//
// A pure variadic minimum forces a runtime check for the zero-argument
// call. Making the first argument positional turns "at least one" into a
// compile-time property.

// ErrNoArguments is returned by the loose variant when called with nothing.
var ErrNoArguments = errors.New("methods: at least one argument required")

// minLoose accepts zero arguments and must fail at run time.
func minLoose(xs ...int) (int, error) {
	if len(xs) == 0 {
		return 0, ErrNoArguments
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if x < best {
			best = x
		}
	}
	return best, nil
}

// Min requires its first argument; Min() is a compile error, and no error
// path survives into the signature.
func Min(first int, rest ...int) int {
	best := first
	for _, x := range rest {
		if x < best {
			best = x
		}
	}
	return best
}
