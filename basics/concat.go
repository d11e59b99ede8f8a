package basics

import "strings"

// Item 51: beware string concatenation in loops.
//
// Strings are immutable; += in a loop copies the whole accumulated prefix
// every iteration, which is quadratic. strings.Builder appends into a
// growable buffer.

// joinPlusEquals concatenates quadratically - DON'T DO THIS in loops.
func joinPlusEquals(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l
		out += "\n"
	}
	return out
}

// JoinLines uses a Builder with a precomputed size hint.
func JoinLines(lines []string) string {
	var b strings.Builder
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	b.Grow(n)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
