package basics

// Item 55: optimize judiciously - measure first.
//
// Both functions below compute the same sum of squares. Intuition says the
// "clever" strided version with manual unrolling must be faster; the
// benchmark in basics_test.go exists so nobody has to argue. Write clear
// code, keep APIs free of performance-motivated warts, and let the
// profiler pick the targets.

// SumSquares is the clear version.
func SumSquares(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x * x
	}
	return total
}

// sumSquaresUnrolled is the hand-"optimized" version kept only as a
// benchmark subject.
func sumSquaresUnrolled(xs []int) int {
	total := 0
	i := 0
	for ; i+4 <= len(xs); i += 4 {
		total += xs[i]*xs[i] + xs[i+1]*xs[i+1] + xs[i+2]*xs[i+2] + xs[i+3]*xs[i+3]
	}
	for ; i < len(xs); i++ {
		total += xs[i] * xs[i]
	}
	return total
}
