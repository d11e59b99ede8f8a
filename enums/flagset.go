package enums

import "strings"

// Item 32: use a bit-flag set type instead of naked OR-ed ints.
//
// Shifted iota gives the bit values; a named set type gives them an API.
// The naked-int version accepts any arithmetic garbage; the typed set only
// composes Styles.

// Style is a single text style flag.
type Style uint8

// The styles. Shifted iota assigns each its own bit.
const (
	Bold Style = 1 << iota
	Italic
	Underline
	Strikethrough
)

var styleNames = map[Style]string{
	Bold:          "bold",
	Italic:        "italic",
	Underline:     "underline",
	Strikethrough: "strikethrough",
}

// StyleSet is a set of styles.
type StyleSet uint8

// NewStyleSet builds a set from individual styles.
func NewStyleSet(styles ...Style) StyleSet {
	var s StyleSet
	for _, st := range styles {
		s |= StyleSet(st)
	}
	return s
}

// With returns the set plus a style.
func (s StyleSet) With(st Style) StyleSet { return s | StyleSet(st) }

// Without returns the set minus a style.
func (s StyleSet) Without(st Style) StyleSet { return s &^ StyleSet(st) }

// Has reports membership.
func (s StyleSet) Has(st Style) bool { return s&StyleSet(st) != 0 }

// Len reports the number of styles in the set.
func (s StyleSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// String lists members in declaration order.
func (s StyleSet) String() string {
	if s == 0 {
		return "{}"
	}
	var parts []string
	for st := Bold; st <= Strikethrough; st <<= 1 {
		if s.Has(st) {
			parts = append(parts, styleNames[st])
		}
	}
	return "{" + strings.Join(parts, "|") + "}"
}
