package object

import (
	"fmt"
	"strings"
)

// Item 9: when values are logically equal, the keys derived from them must
// be equal too.
//
// Go map keys are compared with ==, so a type whose Equal is looser than ==
// (CaseInsensitiveString above) cannot be used as a map key directly. The
// idiom is a canonical Key() whose == matches Equal. Deriving the key from
// the raw representation silently splits logically-equal values across
// distinct map entries.

// PhoneBook maps case-insensitive names to numbers.
type PhoneBook struct {
	entries map[string]string
}

// NewPhoneBook returns an empty phone book.
func NewPhoneBook() *PhoneBook {
	return &PhoneBook{entries: map[string]string{}}
}

// putRaw keys on the raw string - DON'T DO THIS. "Jenny" and "jenny" are
// Equal under CaseInsensitiveString yet land under different keys, so a
// lookup through the other spelling misses.
func (b *PhoneBook) putRaw(name CaseInsensitiveString, number string) {
	b.entries[name.S] = number
}

func (b *PhoneBook) getRaw(name CaseInsensitiveString) (string, bool) {
	n, ok := b.entries[name.S]
	return n, ok
}

// Canonical returns the canonical key form: two values are Equal exactly
// when their canonical forms compare ==. This is the whole hash-key
// contract in one line.
func Canonical(name CaseInsensitiveString) string {
	return strings.ToLower(name.S)
}

// Put stores a number under the canonical key.
func (b *PhoneBook) Put(name CaseInsensitiveString, number string) {
	b.entries[Canonical(name)] = number
}

// Get looks a number up through the canonical key.
func (b *PhoneBook) Get(name CaseInsensitiveString) (string, bool) {
	n, ok := b.entries[Canonical(name)]
	return n, ok
}

// PhoneNumber is a small value type used as a key and hashed explicitly.
type PhoneNumber struct {
	AreaCode, Prefix, Line uint16
}

// RangeError reports a phone-number component outside its range.
type RangeError struct {
	Name string
	Max  uint16
	Got  int
}

// Error implements the error interface.
func (e RangeError) Error() string {
	return fmt.Sprintf("object: %s out of range: %d (max %d)", e.Name, e.Got, e.Max)
}

// NewPhoneNumber validates each component.
func NewPhoneNumber(areaCode, prefix, line int) (PhoneNumber, error) {
	check := func(v int, max uint16, name string) error {
		if v < 0 || v > int(max) {
			return RangeError{Name: name, Max: max, Got: v}
		}
		return nil
	}
	if err := check(areaCode, 999, "area code"); err != nil {
		return PhoneNumber{}, err
	}
	if err := check(prefix, 999, "prefix"); err != nil {
		return PhoneNumber{}, err
	}
	if err := check(line, 9999, "line number"); err != nil {
		return PhoneNumber{}, err
	}
	return PhoneNumber{AreaCode: uint16(areaCode), Prefix: uint16(prefix), Line: uint16(line)}, nil
}

// Equal reports component equality.
func (p PhoneNumber) Equal(o PhoneNumber) bool { return p == o }

// Hash combines all significant fields with the classic multiply-by-31
// scheme. Equal values hash equal because every field Equal consults is
// folded in.
func (p PhoneNumber) Hash() uint64 {
	h := uint64(17)
	h = 31*h + uint64(p.AreaCode)
	h = 31*h + uint64(p.Prefix)
	h = 31*h + uint64(p.Line)
	return h
}

// hashPartial omits the line number - DON'T DO THIS. Unequal numbers that
// share area code and prefix all collide, degrading any hash structure
// built on it to a linked list.
func (p PhoneNumber) hashPartial() uint64 {
	h := uint64(17)
	h = 31*h + uint64(p.AreaCode)
	h = 31*h + uint64(p.Prefix)
	return h
}
