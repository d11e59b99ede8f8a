package basics

import "math/rand/v2"

// Item 47: know and use the standard library.
//
// The hand-rolled random-in-range is the book's example and it translates
// verbatim: modulo of a raw generator output is biased whenever the range
// doesn't divide the generator's period. rand.IntN does rejection sampling
// for you, and the library's own RNG is already safe for concurrent use.

// randomModBiased is the classic flawed shape - DON'T DO THIS. For ranges
// near the generator's span the low buckets are visibly over-represented.
func randomModBiased(r *rand.Rand, n int) int {
	v := int(r.Int64() % int64(n))
	if v < 0 {
		v += n
	}
	return v
}

// RandomIndex uses the library, which handles bias and edge cases.
func RandomIndex(n int) int {
	return rand.IntN(n)
}

// BucketCounts draws `draws` values below n with the given draw function
// and histograms them; the demo and tests use it to expose bias.
func BucketCounts(draw func(int) int, n, draws int) []int {
	counts := make([]int, n)
	for range draws {
		counts[draw(n)]++
	}
	return counts
}
