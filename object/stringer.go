package object

import "fmt"

// Item 10: always consider fmt.Stringer for value types.
//
// A good String method makes logs, errors and test failures readable. When
// the format is part of the API, document it; when it is not, say that it
// may change so nobody parses it.

// String returns the phone number in the form "(XXX) YYY-ZZZZ", where XXX
// is the area code, YYY the prefix and ZZZZ the line number, each
// zero-padded. The format is part of the API; callers may rely on it.
func (p PhoneNumber) String() string {
	return fmt.Sprintf("(%03d) %03d-%04d", p.AreaCode, p.Prefix, p.Line)
}

var _ fmt.Stringer = PhoneNumber{}
