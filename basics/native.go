package basics

// Item 54: use cgo judiciously.
//
// The original's advice about native methods maps onto cgo: every crossing
// costs a scheduler handoff, cgo code escapes the race detector and the
// garbage collector's view, and cross-compilation gets harder. Reach for it
// to bind an existing library, never for speed; the pure-Go version below
// is the kind of function people wrongly assume needs native code.

// PopCount counts set bits with the classic parallel-reduction trick, in
// pure Go. The compiler turns math/bits.OnesCount into a single
// instruction anyway; this exists to show the pure-Go path is not the slow
// path.
func PopCount(x uint64) int {
	x = x - ((x >> 1) & 0x5555555555555555)
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}
