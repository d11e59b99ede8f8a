package basics

// Item 45: minimize the scope of local variables.
//
// Declare at first use; prefer the statement-scoped forms (if v, ok := ...;
// for i := ...) so a variable cannot outlive the logic it serves. The buggy
// pattern below reuses an iterator variable across two loops; the scoped
// version makes the same mistake impossible to write.

// sumTwiceBuggy reuses i across loops - the second loop starts where the
// first one left off because i leaked out of the first loop's scope.
func sumTwiceBuggy(xs []int) int {
	total := 0
	i := 0
	for ; i < len(xs); i++ {
		total += xs[i]
	}
	// Copy-pasted "second pass" that forgot to reset i: it never runs.
	for ; i < len(xs); i++ {
		total += xs[i]
	}
	return total
}

// SumTwice scopes each index to its own loop; forgetting to reset is no
// longer expressible.
func SumTwice(xs []int) int {
	total := 0
	for i := 0; i < len(xs); i++ {
		total += xs[i]
	}
	for i := 0; i < len(xs); i++ {
		total += xs[i]
	}
	return total
}
