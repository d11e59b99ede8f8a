package object

import "cmp"

// Item 12: implement Compare consistently with Equal.
//
// The ordering contract mirrors the equality one: antisymmetric, transitive,
// and total. The classic shortcut of subtracting the fields overflows, and
// an ordering that disagrees with Equal silently breaks sorted containers
// and searches.

// Compare orders phone numbers by area code, then prefix, then line.
// Compare(o) == 0 exactly when Equal(o); sort + binary search stay honest.
func (p PhoneNumber) Compare(o PhoneNumber) int {
	if c := cmp.Compare(p.AreaCode, o.AreaCode); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Prefix, o.Prefix); c != 0 {
		return c
	}
	return cmp.Compare(p.Line, o.Line)
}

// Less adapts Compare for sort.Slice-style callers.
func (p PhoneNumber) Less(o PhoneNumber) bool { return p.Compare(o) < 0 }

// compareBySubtraction is the overflow-prone shortcut - DON'T DO THIS with
// wide integer fields. With int32 fields, a large positive minus a large
// negative wraps around and reports the wrong order.
func compareBySubtraction(a, b int32) int32 {
	return a - b
}
