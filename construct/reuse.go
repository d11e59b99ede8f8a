package construct

import (
	"regexp"
	"time"
)

// Item 5: avoid creating unnecessary objects.
//
// The classic offender is compiling state inside a hot path. Both versions
// below are correct; the slow one recompiles the same pattern on every call.

// isRomanNumeralSlow recompiles the pattern on every call - DON'T DO THIS.
// regexp.MustCompile is not cheap; in a loop this dominates the runtime.
func isRomanNumeralSlow(s string) bool {
	// Go's regexp has no lookahead, so the anchor-only subset is used here.
	return regexp.MustCompile(`^M*(C[MD]|D?C{0,3})(X[CL]|L?X{0,3})(I[XV]|V?I{0,3})$`).MatchString(s)
}

// romanRE is compiled once at package init and reused by every call.
var romanRE = regexp.MustCompile(`^M*(C[MD]|D?C{0,3})(X[CL]|L?X{0,3})(I[XV]|V?I{0,3})$`)

// IsRomanNumeral reports whether s is a well-formed roman numeral.
func IsRomanNumeral(s string) bool {
	return s != "" && romanRE.MatchString(s)
}

// Person demonstrates hoisting derived immutable values. The boomer window
// is fixed, so computing it per call would allocate two time.Time values for
// nothing.
type Person struct {
	BirthDate time.Time
}

var (
	boomStart = time.Date(1946, time.January, 1, 0, 0, 0, 0, time.UTC)
	boomEnd   = time.Date(1965, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// IsBabyBoomer reports whether the person was born in the boomer window.
func (p Person) IsBabyBoomer() bool {
	return !p.BirthDate.Before(boomStart) && p.BirthDate.Before(boomEnd)
}
