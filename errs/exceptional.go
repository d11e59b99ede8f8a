package errs

// Item 57: use panics only for exceptional conditions.
//
// The infamous "loop until it throws" idiom: iterate without a bound and
// let the out-of-range panic terminate the loop. It obscures intent,
// swallows genuine bugs that happen to panic the same way, and loses to
// the plain loop on every axis including speed.

// sumUntilPanic iterates off the end on purpose and recovers - DON'T DO
// THIS. Any other index panic inside the loop body is silently eaten too.
func sumUntilPanic(xs []int) (total int) {
	defer func() {
		_ = recover()
	}()
	for i := 0; ; i++ {
		total += xs[i]
	}
}

// Sum is the ordinary loop.
func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
