package generics

// Item 25: prefer slices of a precise type to shared []any.
//
// Java's covariant arrays fail at store time; Go refuses the conversion
// outright, so the temptation is to pass []any around instead. That trades
// the compile error for per-element boxing and assertions. Keep element
// types precise and convert explicitly at the edges.

// SumInts works on the precise element type.
func SumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// sumAny is the boxed version - DON'T DO THIS. Every element costs an
// interface allocation on the way in and an assertion on the way out.
func sumAny(xs []any) (int, bool) {
	total := 0
	for _, x := range xs {
		v, ok := x.(int)
		if !ok {
			return 0, false
		}
		total += v
	}
	return total, true
}

// Box converts at the edge, once, explicitly. There is no implicit
// []int -> []any conversion in Go, and that is a feature.
func Box(xs []int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
