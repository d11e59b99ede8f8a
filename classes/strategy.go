package classes

import "sort"

// Item 21: use function values for strategies.
//
// Java needed a function-object class per strategy; Go has first-class
// functions. A named func type documents the contract, package-level
// strategies are shared singletons, and a struct-based strategy is only
// needed when the strategy carries state.

// StringComparator orders two strings: negative, zero, or positive.
type StringComparator func(a, b string) int

// ByLength orders strings by length. A package-level function value, shared
// by all callers, allocation-free.
var ByLength StringComparator = func(a, b string) int { return len(a) - len(b) }

// SortStrings sorts a copy of ss with the given strategy and returns it.
func SortStrings(ss []string, cmp StringComparator) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// FoldComparator carries state: a per-call transform applied before
// comparison. This is the struct-strategy shape, used only because the
// strategy is configured.
type FoldComparator struct {
	Transform func(string) string
}

// Compare applies the transform then compares lexically.
func (f FoldComparator) Compare(a, b string) int {
	ta, tb := f.Transform(a), f.Transform(b)
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	default:
		return 0
	}
}
